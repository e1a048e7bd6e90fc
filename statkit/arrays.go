// Package statkit: columnar array kernels shared by the catalog generator's
// scratch workspace and the forecast aggregator's per-cell count arrays.
package statkit

import (
	"sort"

	"github.com/katalvlaran/etasim/rng"
)

// Cumulate replaces x in place with its prefix sum, forward (reverse=false)
// or backward (reverse=true). Allocation-free.
//
//	forward:  x[i] = x[0] + x[1] + ... + x[i]
//	backward: x[i] = x[i] + x[i+1] + ... + x[n-1]
func Cumulate(x []float64, reverse bool) {
	if len(x) == 0 {
		return
	}
	if !reverse {
		for i := 1; i < len(x); i++ {
			x[i] += x[i-1]
		}
		return
	}
	for i := len(x) - 2; i >= 0; i-- {
		x[i] += x[i+1]
	}
}

// Decumulate inverts Cumulate(x, false): successive differences recover
// the original array.
func Decumulate(x []float64) {
	for i := len(x) - 1; i > 0; i-- {
		x[i] -= x[i-1]
	}
}

// SortEachColumn sorts every row of x independently (ascending). Each row
// is an independent "column" in the forecast aggregator's per-cell sense:
// a fixed-capacity array of per-simulation counts for one (lag, model,
// window, bin) cell.
func SortEachColumn(x [][]float64) {
	for _, row := range x {
		sort.Float64s(row)
	}
}

// GetEachColumn copies column j (x[i][j] for every row i) into out, which
// must already have length len(x).
func GetEachColumn(x [][]float64, j int, out []float64) {
	for i, row := range x {
		out[i] = row[j]
	}
}

// SetEachColumn writes values[i] into x[i][j] for every row i.
func SetEachColumn(x [][]float64, j int, values []float64) {
	for i, row := range x {
		row[j] = values[i]
	}
}

// ResizeEachColumn grows (or shrinks) every row of x to newLen in place,
// preserving existing values and zero-filling new slots. If a row already
// has capacity newLen it is reused; otherwise a fresh backing array is
// allocated for that row only (doubling is the caller's concern, e.g. the
// catalog generator's scratch workspace growth policy).
func ResizeEachColumn(x [][]float64, newLen int) {
	for i, row := range x {
		if cap(row) >= newLen {
			x[i] = row[:newLen]
			for j := len(row); j < newLen; j++ {
				x[i][j] = 0
			}
			continue
		}
		grown := make([]float64, newLen)
		copy(grown, row)
		x[i] = grown
	}
}

// ZeroEachColumn zeroes every element of every row of x in place.
func ZeroEachColumn(x [][]float64) {
	for _, row := range x {
		for i := range row {
			row[i] = 0
		}
	}
}

// ArrayAverage returns the mean of x, or 0 for an empty slice.
func ArrayAverage(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	var sum float64
	for _, v := range x {
		sum += v
	}
	return sum / float64(len(x))
}

// BSearch returns the first index n in [lo,hi] such that x[n] > v,
// treating x[hi] as +Inf (so it returns hi when no element of x[lo:hi]
// exceeds v). x[lo:hi] must be sorted
// ascending. This is the rank used by ProbExEachColumn and by
// GammaBounds' at-or-above/strictly-above boundary.
func BSearch(x []float64, v float64, lo, hi int) int {
	for lo < hi {
		mid := (lo + hi) / 2
		if x[mid] > v {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// ProbExEachColumn returns, for each row, the probability of exceedance
// of v: (hi - BSearch(row, v, lo, hi)) / (hi - lo). Each row must already
// be sorted ascending over [lo,hi).
func ProbExEachColumn(x [][]float64, v float64, lo, hi int) []float64 {
	out := make([]float64, len(x))
	span := float64(hi - lo)
	for i, row := range x {
		if span <= 0 {
			out[i] = 0
			continue
		}
		n := BSearch(row, v, lo, hi)
		out[i] = float64(hi-n) / span
	}
	return out
}

// AddPoissonArray adds an independent Poisson(mean[i]) draw to x[i] in
// place, for every i where mean[i] >= rng.SmallExpectedCount (means below
// that threshold contribute nothing, matching PoissonSample's own
// zero-floor). x and mean must have equal length.
func AddPoissonArray(s *rng.Source, x []float64, mean []float64) {
	for i, m := range mean {
		if m < rng.SmallExpectedCount {
			continue
		}
		x[i] += float64(s.PoissonSample(m))
	}
}
