package cache

import (
	"context"

	"github.com/alfdana/danashell/internal/logger"
)

// put stores a successful response in the current generation. Best-effort:
// a failed write never aborts the response already being returned.
func (c *Controller) put(key string, resp *Response) {
	if err := c.gen.Put(key, resp); err != nil {
		if c.metrics != nil {
			c.metrics.CachePutFailures.Inc()
		}
		c.log.Warn("cache write failed", logger.String("key", key), logger.Error(err))
	}
}

// cacheFirst returns the cached response when present, otherwise fetches
// and stores a successful response. With no cache and no network the
// upstream error propagates to the caller.
func (c *Controller) cacheFirst(ctx context.Context, key string, class Class) (*Response, error) {
	if cached, ok := c.gen.Match(key); ok {
		c.countHit(class)
		return cached, nil
	}
	c.countMiss(class)
	resp, err := c.fetcher.Fetch(ctx, key, false)
	if err != nil {
		return nil, err
	}
	if resp.OK() {
		c.put(key, resp)
	}
	return resp, nil
}

// networkFirstWithCache fetches from the network first, storing successful
// responses. On network failure it falls back to the cache, then to a
// synthetic empty 503. Never propagates an error.
func (c *Controller) networkFirstWithCache(ctx context.Context, key string, class Class) *Response {
	resp, err := c.fetcher.Fetch(ctx, key, false)
	if err == nil {
		if resp.OK() {
			c.put(key, resp)
		}
		return resp
	}
	if cached, ok := c.gen.Match(key); ok {
		c.countHit(class)
		return cached
	}
	c.countMiss(class)
	return serviceUnavailable()
}

// navigationNetworkFirst serves page navigations. Successful fetches are
// returned verbatim and never cached so reachable navigations always see
// the freshest content. On failure the cached offline page is served, or a
// literal "Offline" 503 if even that is missing.
func (c *Controller) navigationNetworkFirst(ctx context.Context, key string, class Class) *Response {
	resp, err := c.fetcher.Fetch(ctx, key, false)
	if err == nil {
		return resp
	}
	c.countOfflineFallback()
	if cached, ok := c.gen.Match(c.cfg.OfflinePath); ok {
		c.countHit(class)
		return cached
	}
	c.countMiss(class)
	return offlineUnavailable()
}

// staleWhileRevalidate returns the cached response immediately when
// present and refreshes the entry in the background. With no cached entry
// the caller waits for the network, falling back to an empty 503.
func (c *Controller) staleWhileRevalidate(ctx context.Context, key string, class Class) *Response {
	if cached, ok := c.gen.Match(key); ok {
		c.countHit(class)
		c.revalidations.Add(1)
		go func() {
			defer c.revalidations.Done()
			// Detached from the request context: the revalidation outlives
			// the response. The fetcher's own timeout bounds it.
			resp, err := c.fetcher.Fetch(context.Background(), key, false)
			if err == nil && resp.OK() {
				c.put(key, resp)
			}
		}()
		return cached
	}
	c.countMiss(class)
	resp, err := c.fetcher.Fetch(ctx, key, false)
	if err != nil {
		return serviceUnavailable()
	}
	if resp.OK() {
		c.put(key, resp)
	}
	return resp
}
