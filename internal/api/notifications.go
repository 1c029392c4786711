package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SSE stream configuration.
const (
	maxStreamDuration = 30 * time.Minute // cap connection lifetime to prevent leaks
	heartbeatInterval = 30 * time.Second
	rateLimitWindow   = 1 * time.Minute
	rateLimitRate     = 10
	rateLimitBurst    = 15
)

func (c *Controller) initNotificationRoutes() {
	g := c.echo.Group("/api/v1/notifications")
	g.GET("", c.ListNotifications)
	g.POST("/mark-read", c.MarkAllNotificationsRead)
	g.POST("/:id/click", c.ClickNotification)

	limiter := middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rateLimitRate,
				Burst:     rateLimitBurst,
				ExpiresIn: rateLimitWindow,
			},
		),
	})
	g.GET("/stream", c.StreamNotifications, limiter)
}

// ListNotifications returns all notifications, newest first, plus the
// derived unread count.
func (c *Controller) ListNotifications(ctx echo.Context) error {
	notifications := c.store.GetNotifications()
	return ctx.JSON(http.StatusOK, map[string]any{
		"notifications": notifications,
		"unread":        c.store.GetUnreadCount(),
	})
}

// MarkAllNotificationsRead flips every record's read flag. Idempotent.
func (c *Controller) MarkAllNotificationsRead(ctx echo.Context) error {
	c.store.MarkAllNotificationsRead()
	return ctx.JSON(http.StatusOK, map[string]any{
		"ok":     true,
		"unread": c.store.GetUnreadCount(),
	})
}

// ClickNotification dispatches a click on a displayed notification.
func (c *Controller) ClickNotification(ctx echo.Context) error {
	id := ctx.Param("id")
	n, ok := c.notifier.Get(id)
	if !ok {
		return ctx.JSON(http.StatusNotFound, map[string]string{
			"error": "notification not displayed",
		})
	}
	outcome := c.push.HandleClick(n)
	return ctx.JSON(http.StatusOK, map[string]string{
		"outcome": string(outcome),
		"url":     n.Data.URL,
	})
}

// sseClient is an open page connected to the notification stream. It
// doubles as a click-dispatch target: Focus pushes a focus event down the
// same stream.
type sseClient struct {
	url     string
	focusCh chan struct{}
}

func (s *sseClient) URL() string { return s.url }

func (s *sseClient) Focus() error {
	select {
	case s.focusCh <- struct{}{}:
	default:
		// Stream not draining; the page will still be foregrounded by the
		// next event it reads.
	}
	return nil
}

// StreamNotifications serves live notifications over SSE. The connecting
// page passes its own URL as ?page= so click dispatch can find and focus
// it.
func (c *Controller) StreamNotifications(ctx echo.Context) error {
	w := ctx.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set(echo.HeaderConnection, "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	subID, notifCh := c.push.Subscribe()
	defer c.push.Unsubscribe(subID)

	client := &sseClient{url: ctx.QueryParam("page"), focusCh: make(chan struct{}, 1)}
	token := c.registry.Register(client)
	defer c.registry.Unregister(token)

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()
	deadline := time.NewTimer(maxStreamDuration)
	defer deadline.Stop()

	reqCtx := ctx.Request().Context()
	for {
		select {
		case <-reqCtx.Done():
			return nil
		case <-deadline.C:
			return nil
		case <-heartbeat.C:
			if err := writeSSE(w, "heartbeat", map[string]any{"ts": time.Now().Unix()}); err != nil {
				return nil
			}
		case <-client.focusCh:
			if err := writeSSE(w, "focus", map[string]string{"url": client.url}); err != nil {
				return nil
			}
		case n, ok := <-notifCh:
			if !ok {
				return nil
			}
			if err := writeSSE(w, "notification", n); err != nil {
				return nil
			}
		}
	}
}

func writeSSE(w *echo.Response, event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload); err != nil {
		return err
	}
	w.Flush()
	return nil
}
