package cache

import (
	"sync"

	gocache "github.com/patrickmn/go-cache"
)

// Generation is one named cache generation: request key → response.
// Put is safe for concurrent use; last writer for a key wins.
type Generation interface {
	Match(key string) (*Response, bool)
	Put(key string, resp *Response) error
}

// Storage manages named cache generations. Exactly one generation is
// current at any time; Activate removes the rest.
type Storage interface {
	// Open returns the named generation, creating it if absent.
	Open(name string) (Generation, error)
	// Names lists every existing generation.
	Names() ([]string, error)
	// Delete removes a generation and its entries. Deleting a missing
	// generation is not an error.
	Delete(name string) error
}

// MemoryStorage keeps generations in process memory. Used by tests and by
// deployments that accept losing the cache on restart.
type MemoryStorage struct {
	mu   sync.Mutex
	gens map[string]*memoryGeneration
}

// NewMemoryStorage creates an empty in-memory Storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{gens: make(map[string]*memoryGeneration)}
}

func (s *MemoryStorage) Open(name string) (Generation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if g, ok := s.gens[name]; ok {
		return g, nil
	}
	g := &memoryGeneration{entries: gocache.New(gocache.NoExpiration, 0)}
	s.gens[name] = g
	return g, nil
}

func (s *MemoryStorage) Names() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.gens))
	for name := range s.gens {
		names = append(names, name)
	}
	return names, nil
}

func (s *MemoryStorage) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.gens, name)
	return nil
}

type memoryGeneration struct {
	entries *gocache.Cache
}

func (g *memoryGeneration) Match(key string) (*Response, bool) {
	v, ok := g.entries.Get(key)
	if !ok {
		return nil, false
	}
	resp, ok := v.(*Response)
	if !ok {
		return nil, false
	}
	return resp.Clone(), true
}

func (g *memoryGeneration) Put(key string, resp *Response) error {
	g.entries.Set(key, resp.Clone(), gocache.NoExpiration)
	return nil
}
