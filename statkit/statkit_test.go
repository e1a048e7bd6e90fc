package statkit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/etasim/rng"
)

func TestCumulateDecumulateRoundTrip(t *testing.T) {
	orig := []float64{1, 2, 3, 4, 5}
	x := append([]float64(nil), orig...)
	Cumulate(x, false)
	require.True(t, sortedNonDecreasing(x))
	Decumulate(x)
	for i := range orig {
		assert.InDelta(t, orig[i], x[i], 1e-9)
	}
}

func sortedNonDecreasing(x []float64) bool {
	for i := 1; i < len(x); i++ {
		if x[i] < x[i-1] {
			return false
		}
	}
	return true
}

func TestBSearchRoundTrip(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	for i, v := range x {
		assert.Equal(t, i+1, BSearch(x, v, 0, len(x)))
		assert.Equal(t, i, BSearch(x, v-0.5, 0, len(x)))
	}
}

func TestProbExEachColumn(t *testing.T) {
	x := [][]float64{{1, 2, 3, 4, 5}}
	out := ProbExEachColumn(x, 3, 0, 5)
	// BSearch(x,3,...) == 3 (first index > 3), so (5-3)/5 = 0.4.
	assert.InDelta(t, 0.4, out[0], 1e-12)
}

func TestResizeEachColumnGrowsAndZeroFills(t *testing.T) {
	x := [][]float64{{1, 2}, {3, 4}}
	ResizeEachColumn(x, 4)
	assert.Equal(t, []float64{1, 2, 0, 0}, x[0])
	assert.Equal(t, []float64{3, 4, 0, 0}, x[1])
}

func TestArrayAverage(t *testing.T) {
	assert.Equal(t, 0.0, ArrayAverage(nil))
	assert.InDelta(t, 2.0, ArrayAverage([]float64{1, 2, 3}), 1e-12)
}

func TestAddPoissonArraySkipsTinyMeans(t *testing.T) {
	s := rng.NewSource(5)
	x := []float64{0, 0}
	AddPoissonArray(s, x, []float64{1e-13, 5})
	assert.Equal(t, 0.0, x[0])
}

func TestCorrectedProductivityIdentityWhenAlphaEqualsB(t *testing.T) {
	// When alpha==b, the correction factor Q collapses to the linear
	// ratio (mSup-mref)/(mMax-mMin).
	a, alpha, b := -2.0, 1.0, 1.0
	mref, mSup, mMin, mMax := 3.0, 8.0, 4.0, 7.5
	kUncorr := UncorrectedProductivity(a, alpha, 5.0, mref)
	got := CalcKCorr(a, alpha, b, 5.0, mref, mSup, mMin, mMax)
	want := kUncorr * (mSup - mref) / (mMax - mMin)
	assert.InDelta(t, want, got, 1e-9)
}

func TestBranchRatioConsistencyBoundaryCondition(t *testing.T) {
	// When a generation's draw window exactly equals the reference window
	// [mref,mSup], the correction factor Q must be the identity (1), for
	// any alpha/b/m0 — i.e. CalcKCorr must reduce to the uncorrected
	// productivity with no truncation to correct for.
	mref, mSup := 3.0, 8.0
	for _, params := range []struct{ a, alpha, b, m0 float64 }{
		{-1.0, 1.3, 1.0, 5.0},
		{-2.0, 0.8, 1.1, 4.2},
		{0.5, 1.0, 1.0, 7.9},
	} {
		kUncorr := UncorrectedProductivity(params.a, params.alpha, params.m0, mref)
		got := CalcKCorr(params.a, params.alpha, params.b, params.m0, mref, mSup, mref, mSup)
		assert.InDelta(t, kUncorr, got, 1e-9*math.Max(1, kUncorr))
	}
}

func TestBranchRatioInvariantToOmoriFactor(t *testing.T) {
	// CalcKCorr depends only on magnitude parameters, never on the
	// time/Omori factor it will later be multiplied by — doubling the
	// Omori factor must exactly double the expected count, for any
	// truncation window.
	a, alpha, b := -1.0, 1.3, 1.0
	mref, mSup, mMin, mMax := 3.0, 8.0, 4.0, 7.0
	k := CalcKCorr(a, alpha, b, 5.5, mref, mSup, mMin, mMax)
	assert.InDelta(t, 2*k*3.0, k*6.0, 1e-9)
}

func TestInverseBranchRatio(t *testing.T) {
	// InverseBranchRatio must be the exact inverse of BranchRatio: solving
	// for the productivity exponent that yields a target branch ratio n,
	// then recomputing the branch ratio from it, must recover n.
	alpha, b, mref, mSup, omoriIntegral := 1.1, 1.0, 3.0, 8.0, 5.0
	const n = 0.95
	a := InverseBranchRatio(n, alpha, b, mref, mSup, omoriIntegral)
	got := BranchRatio(a, alpha, b, mref, mSup, omoriIntegral)
	assert.InDelta(t, n, got, 1e-9)
}
