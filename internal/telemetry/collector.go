// Package telemetry records Prometheus metrics for crucible searches.
//
// Metrics (namespace configurable, "crucible" by default):
//   - searches_total{policy,status}: completed searches
//   - states_expanded_total{policy}: states popped and expanded
//   - stale_pops_total{policy}: superseded frontier entries discarded
//   - search_duration_seconds{policy}: wall time per search
//   - search_cost{policy}: cost of the last reachable search
//
// Every collector owns a private registry so that parallel tests and
// repeated CLI invocations never collide on registration.
package telemetry

import (
	"fmt"
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/crucible/astar"
	"github.com/katalvlaran/crucible/internal/config"
)

// Collector accumulates metrics for search results.
type Collector struct {
	enabled  bool
	registry *prometheus.Registry

	searchesTotal  *prometheus.CounterVec
	expandedTotal  *prometheus.CounterVec
	staleTotal     *prometheus.CounterVec
	searchDuration *prometheus.HistogramVec
	searchCost     *prometheus.GaugeVec
}

// NewCollector creates a collector for cfg. A disabled collector accepts
// observations and drops them.
func NewCollector(cfg config.MetricsConfig) *Collector {
	ns := cfg.Namespace
	if ns == "" {
		ns = "crucible"
	}

	c := &Collector{
		enabled:  cfg.Enabled,
		registry: prometheus.NewRegistry(),

		searchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Name:      "searches_total",
				Help:      "Total number of completed searches",
			},
			[]string{"policy", "status"},
		),
		expandedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Name:      "states_expanded_total",
				Help:      "Total number of search states expanded",
			},
			[]string{"policy"},
		),
		staleTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Name:      "stale_pops_total",
				Help:      "Total number of superseded frontier entries discarded",
			},
			[]string{"policy"},
		),
		searchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: ns,
				Name:      "search_duration_seconds",
				Help:      "Duration of a single search in seconds",
				// 100µs to ~3s
				Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16),
			},
			[]string{"policy"},
		),
		searchCost: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: ns,
				Name:      "search_cost",
				Help:      "Minimal cost found by the most recent reachable search",
			},
			[]string{"policy"},
		),
	}

	c.registry.MustRegister(
		c.searchesTotal,
		c.expandedTotal,
		c.staleTotal,
		c.searchDuration,
		c.searchCost,
	)

	return c
}

// Enabled reports whether observations are recorded.
func (c *Collector) Enabled() bool {
	return c.enabled
}

// Observe records one search result. Counters and the duration histogram
// cover every result; the cost gauge is only set for reachable ones.
func (c *Collector) Observe(res astar.Result) {
	if !c.enabled {
		return
	}

	name := res.Policy.Name
	c.searchesTotal.WithLabelValues(name, res.Status.String()).Inc()
	c.expandedTotal.WithLabelValues(name).Add(float64(res.Expanded))
	c.staleTotal.WithLabelValues(name).Add(float64(res.Stale))
	c.searchDuration.WithLabelValues(name).Observe(res.Elapsed.Seconds())
	if res.Reachable() {
		c.searchCost.WithLabelValues(name).Set(float64(res.Cost))
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		ErrorHandling: promhttp.ContinueOnError,
	})
}

// WriteText writes every gathered family in the text exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric family %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
