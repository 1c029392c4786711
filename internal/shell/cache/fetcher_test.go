package cache

import (
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockedFetcher(t *testing.T) *UpstreamFetcher {
	t.Helper()
	fetcher, err := NewUpstreamFetcher("https://alfdana.example", 5*time.Second)
	require.NoError(t, err)
	httpmock.ActivateNonDefault(fetcher.client)
	t.Cleanup(httpmock.DeactivateAndReset)
	return fetcher
}

func TestUpstreamFetcherResolvesAgainstOrigin(t *testing.T) {
	fetcher := newMockedFetcher(t)
	httpmock.RegisterResponder(http.MethodGet, "https://alfdana.example/logo.png",
		httpmock.NewStringResponder(http.StatusOK, "logo-bytes"))

	resp, err := fetcher.Fetch(t.Context(), "/logo.png", false)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "logo-bytes", string(resp.Body))
	assert.True(t, resp.OK())
}

func TestUpstreamFetcherBypassSetsNoCacheHeaders(t *testing.T) {
	fetcher := newMockedFetcher(t)

	var gotCacheControl, gotPragma string
	httpmock.RegisterResponder(http.MethodGet, "https://alfdana.example/offline.html",
		func(req *http.Request) (*http.Response, error) {
			gotCacheControl = req.Header.Get("Cache-Control")
			gotPragma = req.Header.Get("Pragma")
			return httpmock.NewStringResponse(http.StatusOK, "offline"), nil
		})

	_, err := fetcher.Fetch(t.Context(), "/offline.html", true)
	require.NoError(t, err)
	assert.Equal(t, "no-cache", gotCacheControl)
	assert.Equal(t, "no-cache", gotPragma)
}

func TestUpstreamFetcherPropagatesNetworkError(t *testing.T) {
	fetcher := newMockedFetcher(t)
	// No responder registered: httpmock fails the request.

	_, err := fetcher.Fetch(t.Context(), "/unreachable", false)
	require.Error(t, err)
}

func TestUpstreamFetcherKeepsQueryAndHeaders(t *testing.T) {
	fetcher := newMockedFetcher(t)
	httpmock.RegisterResponder(http.MethodGet, "https://alfdana.example/search?q=ac",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "ac", req.URL.Query().Get("q"))
			resp := httpmock.NewStringResponse(http.StatusOK, "results")
			resp.Header.Set("Content-Type", "text/plain")
			return resp, nil
		})

	resp, err := fetcher.Fetch(t.Context(), "/search?q=ac", false)
	require.NoError(t, err)
	assert.Equal(t, "text/plain", resp.Header.Get("Content-Type"))
}
