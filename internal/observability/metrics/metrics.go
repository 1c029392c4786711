// Package metrics exposes Prometheus collectors for the shell gateway.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus collectors used by the application.
type Metrics struct {
	registry *prometheus.Registry

	StrategyDispatches *prometheus.CounterVec
	CacheHits          *prometheus.CounterVec
	CacheMisses        *prometheus.CounterVec
	CachePutFailures   prometheus.Counter
	PrecacheFailures   prometheus.Counter
	OfflineFallbacks   prometheus.Counter
	PushReceived       prometheus.Counter
	PushDecodeFailures prometheus.Counter
}

// NewMetrics creates and registers all collectors on a fresh registry.
func NewMetrics() (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		StrategyDispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "danashell_strategy_dispatches_total",
			Help: "Requests dispatched to each caching strategy.",
		}, []string{"strategy"}),
		CacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "danashell_cache_hits_total",
			Help: "Responses served from the current cache generation.",
		}, []string{"strategy"}),
		CacheMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "danashell_cache_misses_total",
			Help: "Lookups that found no cached response.",
		}, []string{"strategy"}),
		CachePutFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "danashell_cache_put_failures_total",
			Help: "Best-effort cache writes that failed.",
		}),
		PrecacheFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "danashell_precache_failures_total",
			Help: "Install phases aborted by a failed precache fetch.",
		}),
		OfflineFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "danashell_offline_fallbacks_total",
			Help: "Navigations answered with the offline page or a 503.",
		}),
		PushReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "danashell_push_received_total",
			Help: "Push messages received from the delivery channel.",
		}),
		PushDecodeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "danashell_push_decode_failures_total",
			Help: "Push payloads that fell back to plain-text decoding.",
		}),
	}

	collectors := []prometheus.Collector{
		m.StrategyDispatches, m.CacheHits, m.CacheMisses, m.CachePutFailures,
		m.PrecacheFailures, m.OfflineFallbacks, m.PushReceived, m.PushDecodeFailures,
	}
	for _, c := range collectors {
		if err := m.registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}
	return m, nil
}

// Registry returns the underlying registry for the /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
