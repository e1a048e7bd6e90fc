// Package metrics provides an optional Prometheus instrumentation
// Collector for forecast.Runner: counters and a histogram registered
// directly against a prometheus.Registerer.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collector counts catalogs completed, total ruptures produced, and
// observes the per-catalog total-rupture-count distribution (seeds
// included). It satisfies
// forecast.Collector structurally; forecast never imports this package,
// keeping Prometheus out of the simulation core's dependency graph.
type Collector struct {
	catalogsCompleted prometheus.Counter
	rupturesTotal     prometheus.Counter
	descendantCounts  prometheus.Histogram
}

// New registers a fresh set of metrics against reg and returns a
// Collector wrapping them.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		catalogsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "etasim_catalogs_completed_total",
			Help: "Number of simulated catalogs completed.",
		}),
		rupturesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "etasim_ruptures_total",
			Help: "Total ruptures produced across all completed catalogs.",
		}),
		descendantCounts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "etasim_catalog_rupture_count",
			Help:    "Distribution of total rupture count per catalog.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 20),
		}),
	}
	reg.MustRegister(c.catalogsCompleted, c.rupturesTotal, c.descendantCounts)
	return c
}

// CatalogCompleted records one completed catalog with totalRuptures
// ruptures (seeds included).
func (c *Collector) CatalogCompleted(totalRuptures int) {
	if c == nil {
		return
	}
	c.catalogsCompleted.Inc()
	c.rupturesTotal.Add(float64(totalRuptures))
	c.descendantCounts.Observe(float64(totalRuptures))
}
