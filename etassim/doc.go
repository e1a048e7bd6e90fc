// Package etassim implements the catalog generator, the algorithmic
// heart of the simulator: it drives a catalog.Builder through successive
// generations using rng for sampling and statkit for the
// productivity/branch-ratio math.
//
// A Generator is single-owner: only one goroutine may drive one
// Generator+Builder+rng.Source triple at a time. Its scratch workspace
// (cumulative Omori rate and per-parent child-count arrays) is retained
// and grown by doubling across calls, never reallocated from scratch each
// generation.
//
// Suspension points: none. CalcAllGen is CPU-bound; it polls ctx.Err() at
// the top of every CalcNextGen call for cooperative cancellation, never
// mid-generation.
package etassim
