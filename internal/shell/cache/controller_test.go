package cache

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfdana/danashell/internal/logger"
)

// fakeFetcher serves canned responses per key and records every call.
type fakeFetcher struct {
	mu        sync.Mutex
	responses map[string]*Response
	errors    map[string]error
	calls     []string
	bypassed  []string
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		responses: make(map[string]*Response),
		errors:    make(map[string]error),
	}
}

func (f *fakeFetcher) serve(key string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[key] = &Response{Status: status, Header: http.Header{}, Body: []byte(body)}
}

func (f *fakeFetcher) failWith(key string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors[key] = err
}

func (f *fakeFetcher) clearError(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.errors, key)
}

func (f *fakeFetcher) callCount(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, c := range f.calls {
		if c == key {
			count++
		}
	}
	return count
}

func (f *fakeFetcher) Fetch(_ context.Context, key string, bypassCache bool) (*Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, key)
	if bypassCache {
		f.bypassed = append(f.bypassed, key)
	}
	if err, ok := f.errors[key]; ok {
		return nil, err
	}
	if resp, ok := f.responses[key]; ok {
		return resp.Clone(), nil
	}
	return &Response{Status: http.StatusNotFound, Header: http.Header{}}, nil
}

var testManifest = []string{"/offline.html", "/manifest.json", "/logo.png"}

func testConfig() Config {
	return Config{
		Version:        "alf-dana-v2",
		Precache:       testManifest,
		OfflinePath:    "/offline.html",
		InternalPrefix: "/_next/",
	}
}

func newTestController(t *testing.T, fetcher *fakeFetcher) (*Controller, *MemoryStorage) {
	t.Helper()
	storage := NewMemoryStorage()
	ctrl := NewController(testConfig(), storage, fetcher, nil, logger.NewNop())
	return ctrl, storage
}

// installed returns a controller after a successful install+activate.
func installed(t *testing.T, fetcher *fakeFetcher) (*Controller, *MemoryStorage) {
	t.Helper()
	for _, key := range testManifest {
		fetcher.serve(key, http.StatusOK, "precached:"+key)
	}
	ctrl, storage := newTestController(t, fetcher)
	require.NoError(t, ctrl.Install(context.Background()))
	require.NoError(t, ctrl.Activate(context.Background()))
	return ctrl, storage
}

func getRequest(t *testing.T, target string, header map[string]string) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, target, http.NoBody)
	require.NoError(t, err)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	return req
}

func TestInstallPrecachesManifest(t *testing.T) {
	t.Parallel()

	fetcher := newFakeFetcher()
	for _, key := range testManifest {
		fetcher.serve(key, http.StatusOK, "precached:"+key)
	}
	ctrl, storage := newTestController(t, fetcher)

	require.Equal(t, StateInstalling, ctrl.State())
	require.NoError(t, ctrl.Install(context.Background()))
	assert.Equal(t, StateWaiting, ctrl.State())

	// Precache fetches must bypass intermediary caches.
	assert.ElementsMatch(t, testManifest, fetcher.bypassed)

	gen, err := storage.Open("alf-dana-v2")
	require.NoError(t, err)
	for _, key := range testManifest {
		resp, ok := gen.Match(key)
		require.True(t, ok, "manifest entry %s not precached", key)
		assert.Equal(t, "precached:"+key, string(resp.Body))
	}
}

func TestInstallFailureDiscardsNewGeneration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(f *fakeFetcher)
	}{
		{
			name: "network error",
			setup: func(f *fakeFetcher) {
				f.failWith("/logo.png", fmt.Errorf("connection refused"))
			},
		},
		{
			name: "non-2xx response",
			setup: func(f *fakeFetcher) {
				f.serve("/logo.png", http.StatusInternalServerError, "boom")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fetcher := newFakeFetcher()
			fetcher.serve("/offline.html", http.StatusOK, "offline")
			fetcher.serve("/manifest.json", http.StatusOK, "{}")
			tt.setup(fetcher)

			ctrl, storage := newTestController(t, fetcher)
			err := ctrl.Install(context.Background())
			require.Error(t, err)
			assert.Equal(t, StateInstalling, ctrl.State())

			names, err := storage.Names()
			require.NoError(t, err)
			assert.Empty(t, names, "partial generation must be discarded")
		})
	}
}

func TestActivateRemovesStaleGenerations(t *testing.T) {
	t.Parallel()

	fetcher := newFakeFetcher()
	for _, key := range testManifest {
		fetcher.serve(key, http.StatusOK, "ok")
	}
	storage := NewMemoryStorage()

	// Seed two older generations.
	for _, old := range []string{"alf-dana-v0", "alf-dana-v1"} {
		gen, err := storage.Open(old)
		require.NoError(t, err)
		require.NoError(t, gen.Put("/stale", &Response{Status: 200, Header: http.Header{}}))
	}

	ctrl := NewController(testConfig(), storage, fetcher, nil, logger.NewNop())
	require.NoError(t, ctrl.Install(context.Background()))
	require.NoError(t, ctrl.Activate(context.Background()))
	assert.Equal(t, StateActive, ctrl.State())

	names, err := storage.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"alf-dana-v2"}, names)
}

func TestHandleRejectedBeforeActivation(t *testing.T) {
	t.Parallel()

	fetcher := newFakeFetcher()
	ctrl, _ := newTestController(t, fetcher)

	_, err := ctrl.Handle(getRequest(t, "http://shell.local/logo.png", nil))
	require.ErrorIs(t, err, ErrNotActive)
}

func TestLifecycleOrderEnforced(t *testing.T) {
	t.Parallel()

	fetcher := newFakeFetcher()
	ctrl, _ := newTestController(t, fetcher)

	// Activate before install is a programming error.
	require.Error(t, ctrl.Activate(context.Background()))

	for _, key := range testManifest {
		fetcher.serve(key, http.StatusOK, "ok")
	}
	require.NoError(t, ctrl.Install(context.Background()))
	// Double install is rejected.
	require.Error(t, ctrl.Install(context.Background()))
}

func TestPrecachedAssetServedWithoutNetwork(t *testing.T) {
	t.Parallel()

	fetcher := newFakeFetcher()
	ctrl, _ := installed(t, fetcher)
	before := fetcher.callCount("/logo.png")

	resp, err := ctrl.Handle(getRequest(t, "http://shell.local/logo.png", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "precached:/logo.png", string(resp.Body))
	assert.Equal(t, before, fetcher.callCount("/logo.png"), "cache-first hit must not touch the network")
}
