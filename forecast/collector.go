package forecast

// Collector is the metrics seam Runner uses to record per-simulation
// counters. A nil Runner.Metrics falls back to NopCollector. Satisfied
// structurally by *forecast/metrics.Collector without this package
// importing that one, keeping Prometheus out of the simulation core's
// dependency graph.
type Collector interface {
	CatalogCompleted(totalRuptures int)
}

// NopCollector discards every call.
type NopCollector struct{}

// CatalogCompleted is a no-op.
func (NopCollector) CatalogCompleted(int) {}
