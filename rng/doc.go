// Package rng provides the deterministic random primitives the ETAS
// simulation core draws on: uniform variates, Poisson child counts,
// truncated Gutenberg-Richter magnitudes, shifted-Omori interevent times,
// and cumulative-weight parent selection.
//
// Determinism:
//   - A Source wraps a single math/rand.Rand. Same seed + same call
//     sequence ⇒ identical draws, within one Go version/architecture.
//   - Independent streams (for parallel catalogs) are derived from a
//     parent seed via a SplitMix64 avalanche mix, never by re-seeding
//     time.Now() or sharing a *rand.Rand across goroutines.
//
// Concurrency:
//   - *Source is NOT goroutine-safe (it wraps math/rand.Rand, which
//     isn't). Each simulation owns exactly one Source; use DeriveSource
//     to hand independent streams to parallel workers.
package rng
