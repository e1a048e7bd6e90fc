// Package statkit collects the closed-form productivity/branch-ratio math
// and the allocation-light array kernels (cumulate, sort, binary search,
// fractile, Poisson injection) that the catalog generator and forecast
// aggregator share.
//
// Determinism & performance, matching the conventions of the algorithms
// this package descends from:
//   - Fixed iteration order for every explicit loop; no map iteration.
//   - Kernels that take a destination slice never allocate; callers own
//     the backing array and resize it themselves (ResizeEachColumn).
//   - "Column" means the innermost axis of a rectangular [][]float64;
//     EachColumn kernels apply independently per row.
package statkit
