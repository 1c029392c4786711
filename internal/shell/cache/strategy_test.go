package cache

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheFirstStoresOnMiss(t *testing.T) {
	t.Parallel()

	fetcher := newFakeFetcher()
	ctrl, _ := installed(t, fetcher)
	fetcher.serve("/photo.jpg", http.StatusOK, "jpeg-bytes")

	req := getRequest(t, "http://shell.local/photo.jpg", nil)
	resp, err := ctrl.Handle(req)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(resp.Body))
	require.Equal(t, 1, fetcher.callCount("/photo.jpg"))

	// Second lookup is served from cache.
	resp, err = ctrl.Handle(req)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(resp.Body))
	assert.Equal(t, 1, fetcher.callCount("/photo.jpg"))
}

func TestCacheFirstFailurePropagatesAndLeavesCacheUnchanged(t *testing.T) {
	t.Parallel()

	fetcher := newFakeFetcher()
	ctrl, _ := installed(t, fetcher)
	fetcher.failWith("/photo.jpg", fmt.Errorf("network down"))

	req := getRequest(t, "http://shell.local/photo.jpg", nil)
	_, err := ctrl.Handle(req)
	require.Error(t, err)

	// Cache unchanged: a later successful fetch still goes to network.
	fetcher.clearError("/photo.jpg")
	fetcher.serve("/photo.jpg", http.StatusOK, "recovered")
	resp, err := ctrl.Handle(req)
	require.NoError(t, err)
	assert.Equal(t, "recovered", string(resp.Body))
}

func TestCacheFirstDoesNotStoreNon2xx(t *testing.T) {
	t.Parallel()

	fetcher := newFakeFetcher()
	ctrl, _ := installed(t, fetcher)
	fetcher.serve("/missing.png", http.StatusNotFound, "not found")

	req := getRequest(t, "http://shell.local/missing.png", nil)
	resp, err := ctrl.Handle(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.Status)

	// The 404 was not cached; every lookup re-fetches.
	_, err = ctrl.Handle(req)
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.callCount("/missing.png"))
}

func TestNetworkFirstPrefersNetworkAndCaches(t *testing.T) {
	t.Parallel()

	fetcher := newFakeFetcher()
	ctrl, _ := installed(t, fetcher)
	fetcher.serve("/_next/data.json", http.StatusOK, "v1")

	req := getRequest(t, "http://shell.local/_next/data.json", nil)
	resp, err := ctrl.Handle(req)
	require.NoError(t, err)
	assert.Equal(t, "v1", string(resp.Body))

	// Network now fails; the cached copy is served.
	fetcher.failWith("/_next/data.json", fmt.Errorf("offline"))
	resp, err = ctrl.Handle(req)
	require.NoError(t, err)
	assert.Equal(t, "v1", string(resp.Body))
}

func TestNetworkFirstWithoutCacheReturns503(t *testing.T) {
	t.Parallel()

	fetcher := newFakeFetcher()
	ctrl, _ := installed(t, fetcher)
	fetcher.failWith("/_next/other.json", fmt.Errorf("offline"))

	resp, err := ctrl.Handle(getRequest(t, "http://shell.local/_next/other.json", nil))
	require.NoError(t, err, "network-first never propagates a failure")
	assert.Equal(t, http.StatusServiceUnavailable, resp.Status)
	assert.Empty(t, resp.Body)
}

func TestNavigationServedFreshAndNeverCached(t *testing.T) {
	t.Parallel()

	fetcher := newFakeFetcher()
	ctrl, _ := installed(t, fetcher)
	fetcher.serve("/services", http.StatusOK, "<html>services</html>")

	nav := map[string]string{"Sec-Fetch-Mode": "navigate"}
	req := getRequest(t, "http://shell.local/services", nav)

	resp, err := ctrl.Handle(req)
	require.NoError(t, err)
	assert.Equal(t, "<html>services</html>", string(resp.Body))

	// Navigations always hit the network while reachable.
	_, err = ctrl.Handle(req)
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.callCount("/services"))
}

func TestNavigationFallsBackToOfflinePage(t *testing.T) {
	t.Parallel()

	fetcher := newFakeFetcher()
	ctrl, _ := installed(t, fetcher)
	fetcher.failWith("/services", fmt.Errorf("offline"))

	resp, err := ctrl.Handle(getRequest(t, "http://shell.local/services",
		map[string]string{"Sec-Fetch-Mode": "navigate"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "precached:/offline.html", string(resp.Body))
}

func TestNavigationWithoutOfflinePageReturns503Offline(t *testing.T) {
	t.Parallel()

	// Controller installed with a manifest that lacks the offline page.
	fetcher := newFakeFetcher()
	fetcher.serve("/manifest.json", http.StatusOK, "{}")
	cfg := testConfig()
	cfg.Precache = []string{"/manifest.json"}
	storage := NewMemoryStorage()
	ctrl := NewController(cfg, storage, fetcher, nil, nil)
	require.NoError(t, ctrl.Install(t.Context()))
	require.NoError(t, ctrl.Activate(t.Context()))

	fetcher.failWith("/services", fmt.Errorf("offline"))
	resp, err := ctrl.Handle(getRequest(t, "http://shell.local/services",
		map[string]string{"Sec-Fetch-Mode": "navigate"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.Status)
	assert.Equal(t, "Offline", string(resp.Body))
}

func TestStaleWhileRevalidateRoundTrip(t *testing.T) {
	t.Parallel()

	fetcher := newFakeFetcher()
	ctrl, storage := installed(t, fetcher)

	// Seed the cache with V1, then point the network at V2.
	gen, err := storage.Open("alf-dana-v2")
	require.NoError(t, err)
	require.NoError(t, gen.Put("/api-like", &Response{Status: 200, Header: http.Header{}, Body: []byte("V1")}))
	fetcher.serve("/api-like", http.StatusOK, "V2")

	resp, err := ctrl.Handle(getRequest(t, "http://shell.local/api-like", nil))
	require.NoError(t, err)
	assert.Equal(t, "V1", string(resp.Body), "cached value is returned without awaiting the network")

	// After the background fetch resolves the cache holds V2.
	ctrl.Flush()
	updated, ok := gen.Match("/api-like")
	require.True(t, ok)
	assert.Equal(t, "V2", string(updated.Body))
}

func TestStaleWhileRevalidateMissWaitsForNetwork(t *testing.T) {
	t.Parallel()

	fetcher := newFakeFetcher()
	ctrl, _ := installed(t, fetcher)
	fetcher.serve("/fresh", http.StatusOK, "fresh-body")

	req := getRequest(t, "http://shell.local/fresh", nil)
	resp, err := ctrl.Handle(req)
	require.NoError(t, err)
	assert.Equal(t, "fresh-body", string(resp.Body))

	// The miss result was cached for next time.
	fetcher.failWith("/fresh", fmt.Errorf("offline"))
	resp, err = ctrl.Handle(req)
	require.NoError(t, err)
	ctrl.Flush()
	assert.Equal(t, "fresh-body", string(resp.Body))
}

func TestStaleWhileRevalidateMissAndFailureReturns503(t *testing.T) {
	t.Parallel()

	fetcher := newFakeFetcher()
	ctrl, _ := installed(t, fetcher)
	fetcher.failWith("/nothing", fmt.Errorf("offline"))

	resp, err := ctrl.Handle(getRequest(t, "http://shell.local/nothing", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.Status)
	assert.Empty(t, resp.Body)
}

func TestFailedRevalidationKeepsStaleEntry(t *testing.T) {
	t.Parallel()

	fetcher := newFakeFetcher()
	ctrl, storage := installed(t, fetcher)

	gen, err := storage.Open("alf-dana-v2")
	require.NoError(t, err)
	require.NoError(t, gen.Put("/api-like", &Response{Status: 200, Header: http.Header{}, Body: []byte("V1")}))
	fetcher.failWith("/api-like", fmt.Errorf("offline"))

	resp, err := ctrl.Handle(getRequest(t, "http://shell.local/api-like", nil))
	require.NoError(t, err)
	assert.Equal(t, "V1", string(resp.Body))

	ctrl.Flush()
	kept, ok := gen.Match("/api-like")
	require.True(t, ok)
	assert.Equal(t, "V1", string(kept.Body), "failed refresh must not clobber the entry")
}
