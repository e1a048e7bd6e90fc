// Package forecast runs many independent catalog simulations for one
// mainshock and reduces them into per-(model, forecast lag, advisory
// window, magnitude bin) count distributions, from which fractiles and
// gamma-score bounds are derived.
//
// Runner.Run fans simulations out across a worker pool
// (golang.org/x/sync/errgroup, bounded when Runner.MaxWorkers > 0), each
// worker owning its own
// etassim.Generator, catalog.Builder, and derived rng.Source: the
// simulations are independent of each other, so this parallelizes
// without any cross-worker coordination beyond the final count tally.
// Logging and metrics are optional, injected dependencies; the
// simulation core itself (rng, statkit, etasparams, catalog, etassim)
// stays silent and synchronous.
package forecast
