package etassim

import "github.com/katalvlaran/etasim/rng"

// CLog10 is ln(10), used to convert log10-productivity into a natural-log rate.
const CLog10 = 2.302585092994046

// SmallExpectedCount re-exports rng.SmallExpectedCount: the threshold
// below which an expected count is treated as zero.
const SmallExpectedCount = rng.SmallExpectedCount

// OmegaUnderflowThreshold is the total-rate floor below which a
// generation step terminates: once every parent's contribution has
// decayed below this, further children are numerically indistinguishable
// from zero.
const OmegaUnderflowThreshold = 1e-150

// SmallETerminationThreshold is the expected-count floor below which a
// generation step terminates after magnitude-range clamping.
const SmallETerminationThreshold = 0.001
