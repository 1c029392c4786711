// Package store implements the typed client state store: a small schema of
// named records over a per-installation key-value storage area.
package store

import "strings"

// CredentialMethod identifies how the local account was created.
type CredentialMethod string

const (
	MethodEmail CredentialMethod = "email"
	MethodPhone CredentialMethod = "phone"
)

// UserProfile is the display identity. No server-side validation exists;
// it's whatever the user typed.
type UserProfile struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

func (p *UserProfile) valid() bool {
	return strings.TrimSpace(p.Name) != ""
}

// AuthCredential is the single local credential set. Saving overwrites;
// credentials are never merged.
type AuthCredential struct {
	Method     CredentialMethod `json:"method"`
	Identifier string           `json:"identifier"`
	Password   string           `json:"password"`
	Name       string           `json:"name"`
}

func (c *AuthCredential) valid() bool {
	if c.Method != MethodEmail && c.Method != MethodPhone {
		return false
	}
	return c.Identifier != "" && c.Password != ""
}

// RequestStatus is a quote request's position in the fixed progression.
type RequestStatus string

const (
	StatusSubmitted   RequestStatus = "submitted"
	StatusUnderReview RequestStatus = "under review"
	StatusQuoted      RequestStatus = "quoted"
	StatusAssigned    RequestStatus = "assigned"
	StatusInProgress  RequestStatus = "in progress"
	StatusCompleted   RequestStatus = "completed"
)

// statusOrder fixes the progression for validation and display.
var statusOrder = []RequestStatus{
	StatusSubmitted, StatusUnderReview, StatusQuoted,
	StatusAssigned, StatusInProgress, StatusCompleted,
}

// ValidStatus reports whether s is one of the known progression steps.
func ValidStatus(s RequestStatus) bool {
	for _, known := range statusOrder {
		if s == known {
			return true
		}
	}
	return false
}

// QuoteRequest is one submitted quote request. The list is newest-first
// and append-only from the UI's perspective.
type QuoteRequest struct {
	ID      string        `json:"id"`
	Service string        `json:"service"`
	Name    string        `json:"name"`
	Phone   string        `json:"phone"`
	Message string        `json:"message,omitempty"`
	Date    string        `json:"date"`
	Status  RequestStatus `json:"status"`
}

func (q *QuoteRequest) valid() bool {
	return q.ID != "" && q.Service != "" && ValidStatus(q.Status)
}

// AppNotification is one received notification. Read flips true only via
// the bulk mark-all-read operation.
type AppNotification struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Date  string `json:"date"`
	Read  bool   `json:"read"`
}

func (n *AppNotification) valid() bool {
	return n.ID != "" && n.Title != ""
}
