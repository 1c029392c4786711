package push

import "sync"

// Client is one open page the click dispatch can target.
type Client interface {
	// URL returns the page's current URL (root-relative).
	URL() string
	// Focus brings the page to the foreground.
	Focus() error
}

// ClientRegistry enumerates open pages and opens new ones.
type ClientRegistry interface {
	All() []Client
	OpenWindow(url string) error
}

// WindowRegistry is the in-memory ClientRegistry. Pages register while
// connected (the SSE stream handler does this) and opened windows are
// recorded for inspection.
type WindowRegistry struct {
	mu      sync.Mutex
	clients map[int]Client
	nextID  int
	opened  []string
}

// NewWindowRegistry creates an empty registry.
func NewWindowRegistry() *WindowRegistry {
	return &WindowRegistry{clients: make(map[int]Client)}
}

// Register adds a client and returns a token for Unregister.
func (w *WindowRegistry) Register(c Client) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextID++
	w.clients[w.nextID] = c
	return w.nextID
}

// Unregister removes a previously registered client.
func (w *WindowRegistry) Unregister(token int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.clients, token)
}

func (w *WindowRegistry) All() []Client {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Client, 0, len(w.clients))
	for _, c := range w.clients {
		out = append(out, c)
	}
	return out
}

func (w *WindowRegistry) OpenWindow(url string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.opened = append(w.opened, url)
	return nil
}

// OpenedWindows returns the URLs opened so far, oldest first.
func (w *WindowRegistry) OpenedWindows() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, len(w.opened))
	copy(out, w.opened)
	return out
}
