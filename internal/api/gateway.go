package api

import (
	"errors"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/alfdana/danashell/internal/logger"
	"github.com/alfdana/danashell/internal/shell/cache"
)

// initGatewayRoutes installs the shell cache gateway as the catch-all:
// same-origin GETs are served through the caching strategies, everything
// else is reverse-proxied to the upstream unmodified.
func (c *Controller) initGatewayRoutes() {
	upstream, err := url.Parse(c.settings.Shell.Upstream)
	if err != nil {
		// Settings are validated at load; an unparsable upstream here is a
		// programming error.
		panic("api: invalid upstream origin: " + err.Error())
	}
	proxy := httputil.NewSingleHostReverseProxy(upstream)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		c.log.Warn("upstream proxy error",
			logger.String("path", r.URL.Path),
			logger.Error(err))
		w.WriteHeader(http.StatusBadGateway)
	}

	c.echo.Any("/*", func(ctx echo.Context) error {
		return c.serveGateway(ctx, proxy)
	})
}

func (c *Controller) serveGateway(ctx echo.Context, proxy http.Handler) error {
	req := ctx.Request()

	// Non-GET requests pass through to the network unmodified. API paths
	// never reach here (echo routes them first).
	if req.Method != http.MethodGet || strings.HasPrefix(req.URL.Path, "/api/") {
		proxy.ServeHTTP(ctx.Response(), req)
		return nil
	}

	resp, err := c.shell.Handle(req)
	if errors.Is(err, cache.ErrNotActive) {
		proxy.ServeHTTP(ctx.Response(), req)
		return nil
	}
	if err != nil {
		// Cache-first with no cache and no network: the caller sees the
		// failure, as a gateway error.
		c.log.Warn("shell fetch failed",
			logger.String("path", req.URL.Path),
			logger.Error(err))
		return ctx.NoContent(http.StatusBadGateway)
	}

	return writeResponse(ctx, resp)
}

// writeResponse copies a stored response onto the wire.
func writeResponse(ctx echo.Context, resp *cache.Response) error {
	header := ctx.Response().Header()
	for key, values := range resp.Header {
		for _, v := range values {
			header.Add(key, v)
		}
	}
	return ctx.Blob(resp.Status, resp.Header.Get("Content-Type"), resp.Body)
}
