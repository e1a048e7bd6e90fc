// Package etasim is an Operational ETAS (Epidemic-Type Aftershock
// Sequence) catalog simulator: given a seed earthquake and a parameter
// set describing productivity, Omori decay, and Gutenberg-Richter
// magnitude distribution, it produces stochastic synthetic aftershock
// catalogs and reduces many of them into forecast count distributions.
//
// Organized under eight subpackages:
//
//	rng/         — uniform, Poisson, truncated GR, and shifted-Omori sampling
//	statkit/     — corrected-productivity math and columnar statistics kernels
//	etasparams/  — the immutable simulation parameter bundle
//	catalog/     — the append-only, generation-partitioned catalog builder
//	etassim/     — the catalog generator, the algorithmic heart
//	forecast/    — runs many independent catalogs and aggregates them
//	etasconfig/  — YAML configuration loading
//	cmd/etasim/  — CLI driver
//
// A single simulation (etassim.Generator driving a catalog.Builder) is
// single-owner and synchronous; independent simulations parallelize
// trivially via forecast.Runner's worker pool.
package etasim
