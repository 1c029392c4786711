package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/alfdana/danashell/internal/faq"
)

func (c *Controller) initChatRoutes() {
	g := c.echo.Group("/api/v1/chat")
	g.GET("/greeting", c.ChatGreeting)
	g.POST("", c.Chat)
}

// chatRequest is one user message to the FAQ bot.
type chatRequest struct {
	Locale  string `json:"locale"`
	Message string `json:"message"`
}

// chatResponse is the bot's reply. On an unmatched message the WhatsApp
// handoff link and message are included so the caller can offer a human.
type chatResponse struct {
	Answer         string `json:"answer"`
	Matched        bool   `json:"matched"`
	HandoffMessage string `json:"handoff_message,omitempty"`
	HandoffLink    string `json:"handoff_link,omitempty"`
}

// ChatGreeting returns the locale's greeting message.
func (c *Controller) ChatGreeting(ctx echo.Context) error {
	table := faq.TableFor(ctx.QueryParam("locale"))
	return ctx.JSON(http.StatusOK, map[string]string{"greeting": table.Greeting})
}

// Chat answers a free-text question from the locale's FAQ table. First
// matching entry wins; unmatched input gets the no-match message plus a
// handoff link.
func (c *Controller) Chat(ctx echo.Context) error {
	var req chatRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.Message) == "" {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "message is required"})
	}

	result := faq.Match(req.Locale, req.Message)
	resp := chatResponse{Answer: result.Answer, Matched: result.Matched}
	if !result.Matched {
		table := faq.TableFor(req.Locale)
		resp.HandoffMessage = table.HandoffMessage
		resp.HandoffLink = c.links.ChatbotHandoff(req.Message)
	}
	return ctx.JSON(http.StatusOK, resp)
}
