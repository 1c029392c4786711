package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/alfdana/danashell/internal/store"
	"github.com/alfdana/danashell/internal/whatsapp"
)

func (c *Controller) initRequestRoutes() {
	g := c.echo.Group("/api/v1/requests")
	g.GET("", c.ListRequests)
	g.POST("", c.CreateRequest)
}

// ListRequests returns the stored quote requests, newest first.
func (c *Controller) ListRequests(ctx echo.Context) error {
	requests := c.store.GetRequests()
	return ctx.JSON(http.StatusOK, map[string]any{
		"requests": requests,
		"count":    len(requests),
	})
}

// createRequestBody is the quote form payload.
type createRequestBody struct {
	Service string `json:"service"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Area    string `json:"area"`
	Message string `json:"message"`
}

// CreateRequest records a new quote request and returns it together with
// the WhatsApp handoff link for the same form data.
func (c *Controller) CreateRequest(ctx echo.Context) error {
	var body createRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	body.Service = strings.TrimSpace(body.Service)
	body.Name = strings.TrimSpace(body.Name)
	body.Phone = strings.TrimSpace(body.Phone)
	if body.Service == "" || body.Name == "" || body.Phone == "" {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "service, name and phone are required",
		})
	}

	req := store.QuoteRequest{
		ID:      uuid.NewString(),
		Service: body.Service,
		Name:    body.Name,
		Phone:   body.Phone,
		Message: body.Message,
		Date:    time.Now().Format(time.RFC3339),
		Status:  store.StatusSubmitted,
	}
	c.store.SaveRequest(req)

	link := c.links.Quote(whatsapp.QuoteForm{
		Name:    body.Name,
		Phone:   body.Phone,
		Email:   body.Email,
		Service: body.Service,
		Area:    body.Area,
		Message: body.Message,
	})
	return ctx.JSON(http.StatusCreated, map[string]any{
		"request":  req,
		"whatsapp": link,
	})
}
