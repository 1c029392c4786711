package cache

import (
	"net/http"
	"path"
	"strings"
)

// Class is the request class a strategy is chosen by. Every intercepted
// same-origin GET maps to exactly one class.
type Class int

const (
	// ClassInternal is a request under the framework's reserved routing prefix.
	ClassInternal Class = iota
	// ClassStaticAsset is a binary asset identified by file extension.
	ClassStaticAsset
	// ClassNavigation is a top-level page navigation.
	ClassNavigation
	// ClassDefault is everything else.
	ClassDefault
)

// String returns the metrics label for the class's strategy.
func (c Class) String() string {
	switch c {
	case ClassInternal:
		return "network-first"
	case ClassStaticAsset:
		return "cache-first"
	case ClassNavigation:
		return "navigation"
	default:
		return "stale-while-revalidate"
	}
}

// staticExtensions are the binary asset extensions served cache-first.
var staticExtensions = map[string]struct{}{
	".png": {}, ".jpg": {}, ".jpeg": {}, ".svg": {}, ".gif": {}, ".webp": {},
	".ico": {}, ".woff": {}, ".woff2": {}, ".ttf": {}, ".otf": {},
}

// Classify maps an intercepted request to its class. internalPrefix is the
// framework's reserved routing prefix (e.g. "/_next/").
func Classify(r *http.Request, internalPrefix string) Class {
	if internalPrefix != "" && strings.HasPrefix(r.URL.Path, internalPrefix) {
		return ClassInternal
	}
	ext := strings.ToLower(path.Ext(r.URL.Path))
	if _, ok := staticExtensions[ext]; ok {
		return ClassStaticAsset
	}
	if isNavigation(r) {
		return ClassNavigation
	}
	return ClassDefault
}

// isNavigation reports whether the request is a top-level navigation.
// Browsers sending fetch metadata mark these with Sec-Fetch-Mode: navigate;
// for clients without it an HTML Accept header is treated the same way.
func isNavigation(r *http.Request) bool {
	if mode := r.Header.Get("Sec-Fetch-Mode"); mode != "" {
		return mode == "navigate"
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

// RequestKey is the cache key for a request: root-relative path plus query.
func RequestKey(r *http.Request) string {
	if r.URL.RawQuery != "" {
		return r.URL.Path + "?" + r.URL.RawQuery
	}
	return r.URL.Path
}
