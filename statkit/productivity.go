// Package statkit: productivity and branch-ratio closed forms.
//
// These functions keep the branch ratio (expected direct-child count per
// parent) invariant as the magnitude range a generation draws descendants
// from is truncated and re-truncated across the catalog's lifetime — the
// "corrected productivity" calculus.
package statkit

import "math"

// log10 ... ln(10), reused throughout as C_LOG_10.
const log10 = 2.302585092994046

// wDegenerateGuard is the |x| threshold below which W(x) is replaced by
// its limit W(0)=1, to avoid dividing by a near-zero x in (e^x-1)/x.
const wDegenerateGuard = 1e-16

// w evaluates W(x) = (e^x - 1) / x, using expm1 for cancellation safety
// and falling back to the x->0 limit (1) when x is too small for the
// division to be numerically meaningful.
func w(x float64) float64 {
	if math.Abs(x) <= wDegenerateGuard {
		return 1
	}
	return math.Expm1(x) / x
}

// UncorrectedProductivity returns k = 10^(a + alpha*(m0-mref)), the raw
// productivity of an event of magnitude m0 before magnitude-range
// correction.
func UncorrectedProductivity(a, alpha, m0, mref float64) float64 {
	return math.Pow(10, a+alpha*(m0-mref))
}

// CorrectedProductivity returns k_corr = k * Q, where Q rescales k so the
// branch ratio stays invariant when descendants are drawn from [mMin,mMax]
// instead of the reference range [mref,mSup]:
//
//	v = ln10*(alpha-b)
//	Q = exp(v*(mref-mMin)) * W(v*(mSup-mref))*(mSup-mref)
//	        / ( W(v*(mMax-mMin))*(mMax-mMin) )
//
// Precondition: mMax > mMin (a degenerate zero-width draw range has no
// well-defined branch ratio and is a caller bug, not a data condition this
// function silently papers over).
func CorrectedProductivity(k, alpha, b, mref, mSup, mMin, mMax float64) float64 {
	v := log10 * (alpha - b)
	num := math.Exp(v*(mref-mMin)) * w(v*(mSup-mref)) * (mSup - mref)
	den := w(v*(mMax-mMin)) * (mMax - mMin)
	return k * num / den
}

// CalcKCorr is the convenience composition UncorrectedProductivity +
// CorrectedProductivity: given a parent magnitude m0 and the generation
// it is drawing descendants for ([mMin,mMax]), returns the corrected
// productivity to store on each child rupture.
func CalcKCorr(a, alpha, b, m0, mref, mSup, mMin, mMax float64) float64 {
	k := UncorrectedProductivity(a, alpha, m0, mref)
	return CorrectedProductivity(k, alpha, b, mref, mSup, mMin, mMax)
}

// BranchRatio returns the expected direct-child count per parent at
// magnitude mref, over a window whose Omori-integral is omoriIntegral
// (callers pass rng.OmoriRate(p,c,0,tint) or an equivalent precomputed
// value):
//
//	R = b*ln10 * 10^a * W(v*(mSup-mref))*(mSup-mref) * omoriIntegral
func BranchRatio(a, alpha, b, mref, mSup, omoriIntegral float64) float64 {
	return math.Pow(10, a) * branchRatioPerA(alpha, b, mref, mSup, omoriIntegral)
}

// branchRatioPerA is BranchRatio with the 10^a factor omitted — R', used
// both internally and by InverseBranchRatio.
func branchRatioPerA(alpha, b, mref, mSup, omoriIntegral float64) float64 {
	v := log10 * (alpha - b)
	delta := mSup - mref
	return b * log10 * w(v*delta) * delta * omoriIntegral
}

// InverseBranchRatio solves for the productivity exponent a such that
// BranchRatio(a, alpha, b, mref, mSup, omoriIntegral) == n:
//
//	a = log10(n / R')
func InverseBranchRatio(n, alpha, b, mref, mSup, omoriIntegral float64) float64 {
	rPrime := branchRatioPerA(alpha, b, mref, mSup, omoriIntegral)
	return math.Log10(n / rPrime)
}
