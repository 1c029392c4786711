// Package cache implements the offline shell cache: a single versioned
// generation of stored responses, a precache manifest, request
// classification and the four serving strategies.
package cache

import "net/http"

// Response is a stored or fetched HTTP response. Bodies are held in full;
// shell assets and pages are small by contract with the deploy pipeline.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// OK reports whether the response has a 2xx status.
func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Clone returns a deep copy safe to store while the original is returned
// to the caller.
func (r *Response) Clone() *Response {
	body := make([]byte, len(r.Body))
	copy(body, r.Body)
	return &Response{Status: r.Status, Header: r.Header.Clone(), Body: body}
}

// serviceUnavailable is the synthetic empty-body fallback used when both
// the network and the cache come up empty.
func serviceUnavailable() *Response {
	return &Response{Status: http.StatusServiceUnavailable, Header: http.Header{}}
}

// offlineUnavailable is the synthetic navigation fallback used when even
// the offline page is missing from the cache.
func offlineUnavailable() *Response {
	h := http.Header{}
	h.Set("Content-Type", "text/plain; charset=utf-8")
	return &Response{Status: http.StatusServiceUnavailable, Header: h, Body: []byte("Offline")}
}
