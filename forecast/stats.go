package forecast

import "github.com/katalvlaran/etasim/statkit"

// Fractile returns cell idx's simulated p-fractile (0 <= p <= 1),
// p=0.5 for the median. Counts must already be sorted ascending (Run
// sorts every row before returning).
func (a *Aggregation) Fractile(idx int, p float64) (float64, error) {
	row, _, err := a.Cell(idx)
	if err != nil {
		return 0, err
	}
	if len(row) == 0 {
		return 0, nil
	}
	rank := int(p * float64(len(row)-1))
	if rank < 0 {
		rank = 0
	}
	if rank > len(row)-1 {
		rank = len(row) - 1
	}
	return row[rank], nil
}

// Median is Fractile(idx, 0.5).
func (a *Aggregation) Median(idx int) (float64, error) {
	return a.Fractile(idx, 0.5)
}

// GammaBounds returns the (low, high) gamma-score bounds for cell idx
// given an observed count: the probability of exceedance strictly above
// observed, and at-or-above observed, within the simulated distribution.
// Counts must already be sorted ascending.
func (a *Aggregation) GammaBounds(idx int, observed float64) (lo, hi float64, err error) {
	row, _, cellErr := a.Cell(idx)
	if cellErr != nil {
		return 0, 0, cellErr
	}
	n := len(row)
	if n == 0 {
		return 0, 0, nil
	}
	// Strictly-above: statkit.BSearch gives the first index with
	// row[n] > observed directly.
	aboveIdx := statkit.BSearch(row, observed, 0, n)
	lo = float64(n-aboveIdx) / float64(n)
	// At-or-above: counts are non-negative integers, so searching just
	// under observed turns BSearch's strict "> v" semantics into an
	// "at-or-above v" boundary.
	atOrAboveIdx := statkit.BSearch(row, observed-0.5, 0, n)
	hi = float64(n-atOrAboveIdx) / float64(n)
	return lo, hi, nil
}
