package cache

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// maxResponseBody caps how much of an upstream body is buffered. Shell
// assets are far below this; anything larger is truncated-as-failure.
const maxResponseBody = 32 << 20

// Fetcher retrieves a response for a root-relative request key from the
// upstream origin.
type Fetcher interface {
	// Fetch performs a GET for key. When bypassCache is set, intermediary
	// caches are asked to revalidate so install always sees fresh content.
	Fetch(ctx context.Context, key string, bypassCache bool) (*Response, error)
}

// UpstreamFetcher fetches from a fixed upstream origin over HTTP.
type UpstreamFetcher struct {
	base   *url.URL
	client *http.Client
}

// NewUpstreamFetcher creates a Fetcher against the given absolute origin.
func NewUpstreamFetcher(upstream string, timeout time.Duration) (*UpstreamFetcher, error) {
	base, err := url.Parse(upstream)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream %q: %w", upstream, err)
	}
	return &UpstreamFetcher{
		base:   base,
		client: &http.Client{Timeout: timeout},
	}, nil
}

func (f *UpstreamFetcher) Fetch(ctx context.Context, key string, bypassCache bool) (*Response, error) {
	ref, err := url.Parse(key)
	if err != nil {
		return nil, fmt.Errorf("invalid request key %q: %w", key, err)
	}
	target := f.base.ResolveReference(ref)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request for %s: %w", key, err)
	}
	if bypassCache {
		req.Header.Set("Cache-Control", "no-cache")
		req.Header.Set("Pragma", "no-cache")
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream fetch %s failed: %w", key, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream body for %s: %w", key, err)
	}
	return &Response{Status: resp.StatusCode, Header: resp.Header.Clone(), Body: body}, nil
}
