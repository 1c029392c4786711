package cache

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/alfdana/danashell/internal/logger"
	"github.com/alfdana/danashell/internal/observability/metrics"
)

// State is the controller lifecycle state. Requests are only intercepted
// while StateActive.
type State int32

const (
	// StateInstalling: the current generation is being precached.
	StateInstalling State = iota
	// StateWaiting: precache finished, old generations not yet removed.
	StateWaiting
	// StateActive: old generations removed, interception enabled.
	StateActive
)

func (s State) String() string {
	switch s {
	case StateInstalling:
		return "installing"
	case StateWaiting:
		return "waiting"
	case StateActive:
		return "active"
	default:
		return "unknown"
	}
}

// ErrNotActive is returned by Handle before activation completes. Callers
// pass the request through to the network unmodified.
var ErrNotActive = errors.New("shell cache controller not active")

// Config carries the controller's deploy-time parameters.
type Config struct {
	// Version names the current cache generation.
	Version string
	// Precache lists root-relative URLs that must be cached during install.
	Precache []string
	// OfflinePath is the navigation fallback page; must appear in Precache.
	OfflinePath string
	// InternalPrefix is the framework's reserved routing prefix.
	InternalPrefix string
}

// Controller owns the current cache generation and serves intercepted
// requests through per-class strategies. Each request is handled by an
// independent task; the generation is the only shared state and its Put is
// last-writer-wins per key.
type Controller struct {
	cfg     Config
	storage Storage
	fetcher Fetcher
	metrics *metrics.Metrics
	log     logger.Logger

	state atomic.Int32
	gen   Generation

	// revalidations tracks in-flight background refreshes so shutdown and
	// tests can wait for them.
	revalidations sync.WaitGroup
}

// NewController creates a controller in StateInstalling. Install and
// Activate must complete, in order, before Handle accepts requests.
func NewController(cfg Config, storage Storage, fetcher Fetcher, m *metrics.Metrics, log logger.Logger) *Controller {
	if log == nil {
		log = logger.NewNop()
	}
	return &Controller{cfg: cfg, storage: storage, fetcher: fetcher, metrics: m, log: log}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return State(c.state.Load())
}

// Active reports whether the controller intercepts requests.
func (c *Controller) Active() bool {
	return c.State() == StateActive
}

// Install opens the current generation and precaches every manifest entry,
// bypassing intermediary caches. All-or-nothing: any failed fetch discards
// the new generation and fails the install. Returns only once the precache
// has fully completed.
func (c *Controller) Install(ctx context.Context) error {
	if c.State() != StateInstalling {
		return fmt.Errorf("install called in state %s", c.State())
	}

	gen, err := c.storage.Open(c.cfg.Version)
	if err != nil {
		return fmt.Errorf("failed to open cache generation %s: %w", c.cfg.Version, err)
	}

	for _, key := range c.cfg.Precache {
		resp, err := c.fetcher.Fetch(ctx, key, true)
		if err == nil && !resp.OK() {
			err = fmt.Errorf("precache fetch %s returned status %d", key, resp.Status)
		}
		if err != nil {
			c.countPrecacheFailure()
			// Discard the partially filled new generation.
			if delErr := c.storage.Delete(c.cfg.Version); delErr != nil {
				c.log.Warn("failed to discard partial generation", logger.Error(delErr))
			}
			return fmt.Errorf("install aborted: %w", err)
		}
		if err := gen.Put(key, resp); err != nil {
			c.countPrecacheFailure()
			if delErr := c.storage.Delete(c.cfg.Version); delErr != nil {
				c.log.Warn("failed to discard partial generation", logger.Error(delErr))
			}
			return fmt.Errorf("install aborted: failed to store %s: %w", key, err)
		}
	}

	c.gen = gen
	c.state.Store(int32(StateWaiting))
	c.log.Info("shell cache installed",
		logger.String("generation", c.cfg.Version),
		logger.Int("precached", len(c.cfg.Precache)))
	return nil
}

// Activate deletes every generation other than the current one, then
// enables interception for all requests immediately. Returns only once the
// cleanup has fully completed.
func (c *Controller) Activate(ctx context.Context) error {
	if c.State() != StateWaiting {
		return fmt.Errorf("activate called in state %s", c.State())
	}
	_ = ctx

	names, err := c.storage.Names()
	if err != nil {
		return fmt.Errorf("failed to enumerate cache generations: %w", err)
	}
	for _, name := range names {
		if name == c.cfg.Version {
			continue
		}
		if err := c.storage.Delete(name); err != nil {
			return fmt.Errorf("failed to delete stale generation %s: %w", name, err)
		}
		c.log.Info("deleted stale cache generation", logger.String("generation", name))
	}

	c.state.Store(int32(StateActive))
	c.log.Info("shell cache active", logger.String("generation", c.cfg.Version))
	return nil
}

// Handle serves an intercepted same-origin GET request through the
// strategy for its class. Only cache-first lets an upstream failure
// propagate; every other strategy resolves to a response.
func (c *Controller) Handle(r *http.Request) (*Response, error) {
	if !c.Active() {
		return nil, ErrNotActive
	}

	class := Classify(r, c.cfg.InternalPrefix)
	c.countDispatch(class)
	key := RequestKey(r)

	switch class {
	case ClassInternal:
		return c.networkFirstWithCache(r.Context(), key, class), nil
	case ClassStaticAsset:
		return c.cacheFirst(r.Context(), key, class)
	case ClassNavigation:
		return c.navigationNetworkFirst(r.Context(), key, class), nil
	default:
		return c.staleWhileRevalidate(r.Context(), key, class), nil
	}
}

// Flush blocks until background revalidations started so far have finished.
func (c *Controller) Flush() {
	c.revalidations.Wait()
}

func (c *Controller) countDispatch(class Class) {
	if c.metrics != nil {
		c.metrics.StrategyDispatches.WithLabelValues(class.String()).Inc()
	}
}

func (c *Controller) countHit(class Class) {
	if c.metrics != nil {
		c.metrics.CacheHits.WithLabelValues(class.String()).Inc()
	}
}

func (c *Controller) countMiss(class Class) {
	if c.metrics != nil {
		c.metrics.CacheMisses.WithLabelValues(class.String()).Inc()
	}
}

func (c *Controller) countPrecacheFailure() {
	if c.metrics != nil {
		c.metrics.PrecacheFailures.Inc()
	}
}

func (c *Controller) countOfflineFallback() {
	if c.metrics != nil {
		c.metrics.OfflineFallbacks.Inc()
	}
}
