// Package whatsapp builds the outbound wa.me handoff links. Pure string
// formatting; the WhatsApp side is an external collaborator.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// Links builds wa.me URLs for a fixed business number.
type Links struct {
	number string
}

// NewLinks creates a link builder for the given digits-only international
// number.
func NewLinks(number string) *Links {
	return &Links{number: number}
}

// Link returns a wa.me URL pre-filled with the given message.
func (l *Links) Link(message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", l.number, url.QueryEscape(message))
}

// Generic returns the default "interested in your services" link.
func (l *Links) Generic() string {
	return l.Link("Hello! I'm interested in your technical services. Can you please help me?")
}

// Service returns a link asking for a quote on a named service.
func (l *Links) Service(serviceName string) string {
	return l.Link(fmt.Sprintf("Hello! I'm interested in your %s service. Could you please provide a quote?", serviceName))
}

// ChatbotHandoff returns the link used when the FAQ bot cannot answer.
func (l *Links) ChatbotHandoff(userQuestion string) string {
	return l.Link(fmt.Sprintf("Hello ALF DANA! I was chatting with your assistant and have a question: %q", userQuestion))
}

// QuoteForm is the contact form payload a quote link is built from.
type QuoteForm struct {
	Name     string
	Phone    string
	Email    string
	Service  string
	Area     string
	Message  string
	HasPhoto bool
}

// QuoteMessage renders the quote request message, skipping empty fields.
func QuoteMessage(f QuoteForm) string {
	lines := []string{
		"Hello ALF DANA! I would like to request a quote.",
		"Name: " + f.Name,
		"Phone: " + f.Phone,
	}
	if f.Email != "" {
		lines = append(lines, "Email: "+f.Email)
	}
	lines = append(lines, "Service: "+f.Service, "Area: "+f.Area)
	if f.Message != "" {
		lines = append(lines, "Details: "+f.Message)
	}
	if f.HasPhoto {
		lines = append(lines, "Photo: I have a photo to share (will attach in chat)")
	}
	return strings.Join(lines, "\n")
}

// Quote returns a link pre-filled with the rendered quote request.
func (l *Links) Quote(f QuoteForm) string {
	return l.Link(QuoteMessage(f))
}
