package rng

import "math"

// pCancellationGuard is how close p may come to 1 before OmoriRate switches
// from the (1-p)-denominator closed form to the logarithmic p==1 form, to
// avoid dividing by a near-zero (1-p) and losing precision.
const pCancellationGuard = 1e-9

// OmoriRate returns the integral of (t+c)^-p from t1 to t2 (t2 >= t1 >= 0):
//
//	((t2+c)^(1-p) - (t1+c)^(1-p)) / (1-p)   for p != 1
//	ln((t2+c)/(t1+c))                        for p == 1
func OmoriRate(p, c, t1, t2 float64) float64 {
	if t2 <= t1 {
		return 0
	}
	if math.Abs(p-1) < pCancellationGuard {
		return math.Log((t2 + c) / (t1 + c))
	}
	exp := 1 - p
	return (math.Pow(t2+c, exp) - math.Pow(t1+c, exp)) / exp
}

// OmoriRateShifted returns the expected direct-child rate of a parent at
// t0, over the caller window [t1,t2], excluding a dead zone of width teps
// immediately after t0:
//
//	OmoriRate(p, c, max(t1,t0+teps)-t0, t2-t0)   when t2 > t0+teps
//	0                                             otherwise
func OmoriRateShifted(p, c, t0, teps, t1, t2 float64) float64 {
	if t2 <= t0+teps {
		return 0
	}
	lo := t1
	if t0+teps > lo {
		lo = t0 + teps
	}
	return OmoriRate(p, c, lo-t0, t2-t0)
}

// OmoriSampleShifted draws an interevent time tau in [max(t1,t0), t2] from
// the shifted-Omori density proportional to (tau-t0+c)^-p, via inverse CDF
// on the closed-form primitive used by OmoriRate.
func (s *Source) OmoriSampleShifted(p, c, t0, t1, t2 float64) float64 {
	lo := t1
	if t0 > lo {
		lo = t0
	}
	a := lo - t0 + c
	b := t2 - t0 + c
	if b <= a {
		return lo
	}
	u := s.Uniform()

	var x float64
	if math.Abs(p-1) < pCancellationGuard {
		// CDF(tau) = ln(a.. ) ; invert ln: x = a * (b/a)^u
		x = a * math.Pow(b/a, u)
	} else {
		exp := 1 - p
		aPow := math.Pow(a, exp)
		bPow := math.Pow(b, exp)
		x = math.Pow(aPow+u*(bPow-aPow), 1/exp)
	}
	return t0 + x - c
}

// CumulativeSample returns an index i in [0,n) drawn with probability
// proportional to (cumWeights[i]-cumWeights[i-1]) / cumWeights[n-1], via
// binary search on u*cumWeights[n-1]. cumWeights must be a non-decreasing
// prefix sum of length n with cumWeights[n-1] > 0.
func (s *Source) CumulativeSample(cumWeights []float64) int {
	n := len(cumWeights)
	if n == 0 {
		return -1
	}
	target := s.Uniform() * cumWeights[n-1]
	lo, hi := 0, n-1
	for lo < hi {
		mid := (lo + hi) / 2
		if cumWeights[mid] > target {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}
