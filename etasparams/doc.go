// Package etasparams defines CatalogParams, the immutable bundle of ETAS
// productivity, Omori-decay, and Gutenberg-Richter parameters that drives a
// simulation. CatalogParams is cheaply copyable (all fields are scalars)
// and is validated once, at setup, via Validate; downstream code never
// re-checks these invariants in hot loops.
package etasparams
