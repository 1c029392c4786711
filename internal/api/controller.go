// Package api exposes the HTTP surface: the shell cache gateway plus the
// JSON API for client state, auth simulation, chat and live notifications.
package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alfdana/danashell/internal/auth"
	"github.com/alfdana/danashell/internal/conf"
	"github.com/alfdana/danashell/internal/logger"
	"github.com/alfdana/danashell/internal/observability/metrics"
	"github.com/alfdana/danashell/internal/push"
	"github.com/alfdana/danashell/internal/shell/cache"
	"github.com/alfdana/danashell/internal/store"
	"github.com/alfdana/danashell/internal/whatsapp"
)

// Controller wires all HTTP routes.
type Controller struct {
	echo     *echo.Echo
	settings *conf.Settings
	store    *store.Store
	auth     *auth.Service
	push     *push.Service
	notifier *push.TrackingNotifier
	registry *push.WindowRegistry
	shell    *cache.Controller
	links    *whatsapp.Links
	metrics  *metrics.Metrics
	log      logger.Logger
}

// Deps carries the subsystems the Controller serves.
type Deps struct {
	Settings *conf.Settings
	Store    *store.Store
	Auth     *auth.Service
	Push     *push.Service
	Notifier *push.TrackingNotifier
	Registry *push.WindowRegistry
	Shell    *cache.Controller
	Links    *whatsapp.Links
	Metrics  *metrics.Metrics
	Log      logger.Logger
}

// NewController builds the echo server and registers all routes.
func NewController(d Deps) *Controller {
	c := &Controller{
		echo:     echo.New(),
		settings: d.Settings,
		store:    d.Store,
		auth:     d.Auth,
		push:     d.Push,
		notifier: d.Notifier,
		registry: d.Registry,
		shell:    d.Shell,
		links:    d.Links,
		metrics:  d.Metrics,
		log:      d.Log,
	}
	if c.log == nil {
		c.log = logger.NewNop()
	}
	c.echo.HideBanner = true
	c.echo.Use(echomw.Recover())

	c.initHealthRoutes()
	c.initAuthRoutes()
	c.initRequestRoutes()
	c.initNotificationRoutes()
	c.initChatRoutes()
	c.initGatewayRoutes()
	return c
}

// Echo exposes the underlying echo instance for tests.
func (c *Controller) Echo() *echo.Echo {
	return c.echo
}

// Start serves on the given address until Shutdown.
func (c *Controller) Start(addr string) error {
	return c.echo.Start(addr)
}

// Shutdown stops the HTTP server gracefully.
func (c *Controller) Shutdown(ctx context.Context) error {
	return c.echo.Shutdown(ctx)
}

func (c *Controller) initHealthRoutes() {
	c.echo.GET("/healthz", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{
			"status": "ok",
			"shell":  c.shell.State().String(),
		})
	})
	if c.metrics != nil {
		c.echo.GET("/metrics", echo.WrapHandler(
			promhttp.HandlerFor(c.metrics.Registry(), promhttp.HandlerOpts{})))
	}
}
