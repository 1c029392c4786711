// Package push receives push messages, displays them as notifications,
// records them in the client state store and streams them to open pages.
package push

import "encoding/json"

// Default payload fields used when the push message omits them.
const (
	DefaultTitle = "ALF DANA"
	DefaultBody  = "New update from ALF DANA Technical Services."
	DefaultURL   = "/"
)

// Payload is the decoded push message.
type Payload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url"`
}

// DecodePayload parses a raw push message. The payload is expected to be
// JSON; when parsing fails the raw bytes become the plain-text body under
// the default title. The second return reports whether JSON decoding
// succeeded. Absent fields fall back to the defaults.
func DecodePayload(raw []byte) (Payload, bool) {
	p := Payload{Title: DefaultTitle, Body: DefaultBody, URL: DefaultURL}
	if len(raw) == 0 {
		return p, false
	}

	var decoded Payload
	if err := json.Unmarshal(raw, &decoded); err != nil {
		p.Body = string(raw)
		return p, false
	}
	if decoded.Title != "" {
		p.Title = decoded.Title
	}
	if decoded.Body != "" {
		p.Body = decoded.Body
	}
	if decoded.URL != "" {
		p.URL = decoded.URL
	}
	return p, true
}
