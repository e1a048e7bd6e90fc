package etassim

import (
	"context"
	"errors"

	"github.com/katalvlaran/etasim/catalog"
	"github.com/katalvlaran/etasim/etasparams"
	"github.com/katalvlaran/etasim/rng"
	"github.com/katalvlaran/etasim/statkit"
)

// ErrCancelled is matched (errors.Is) by the error CalcNextGen or
// CalcAllGen returns when it observes a done context at a generation
// boundary; that error also wraps the context's own error
// (context.Canceled or context.DeadlineExceeded). The builder remains
// finalizable after this error.
var ErrCancelled = errors.New("etassim: simulation cancelled")

// Generator drives a catalog.Builder through successive generations. It
// owns a scratch workspace (cumulative Omori rate + per-parent child
// count) sized to the current generation and grown by doubling; reuse one
// Generator across CalcNextGen calls within a single simulation rather
// than constructing a fresh one per generation.
//
// Not safe for concurrent use: one goroutine, one Generator, one
// Builder, one rng.Source.
type Generator struct {
	cumOmoriRate []float64
	childCount   []int
}

// NewGenerator returns a ready-to-use Generator with an empty scratch
// workspace (grown lazily on first use).
func NewGenerator() *Generator {
	return &Generator{}
}

// ensureCapacity grows both scratch arrays to at least n by doubling,
// preserving no data (they are fully recomputed each call) but avoiding
// reallocation once a generation size has been seen before.
func (g *Generator) ensureCapacity(n int) {
	if cap(g.cumOmoriRate) >= n {
		g.cumOmoriRate = g.cumOmoriRate[:n]
		g.childCount = g.childCount[:n]
		return
	}
	newCap := maxInt(n, 2*cap(g.cumOmoriRate))
	g.cumOmoriRate = make([]float64, n, newCap)
	g.childCount = make([]int, n, newCap)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// CalcNextGen runs one generation step and returns the number of
// children produced; 0 signals normal termination (max generations
// reached, total-rate underflow, tiny expected count, or a zero Poisson
// draw) and is not an error. ctx is polled once, at the top, for
// cooperative cancellation.
func (g *Generator) CalcNextGen(ctx context.Context, b *catalog.Builder, src *rng.Source, params etasparams.CatalogParams) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, errWrap(err)
	}

	// Step 1: generation-count budget, inclusive of generation 0.
	if b.GenCount() >= params.GenCountMax {
		return 0, nil
	}

	// Step 2: read the last generation.
	lastGenIdx := b.GenCount() - 1
	ruptures, err := b.GenRuptures(lastGenIdx)
	if err != nil {
		return 0, err
	}
	n := len(ruptures)
	if n == 0 {
		return 0, nil
	}

	// Step 3: scratch arrays sized to n.
	g.ensureCapacity(n)

	// Step 4: per-parent expected rate, running cumulative sum.
	var running float64
	for j, r := range ruptures {
		omega := r.KProd * rng.OmoriRateShifted(params.P, params.C, r.TDay, params.TEps, params.TBegin, params.TEnd)
		running += omega
		g.cumOmoriRate[j] = running
		g.childCount[j] = 0
	}

	// Step 5: total-rate underflow check.
	omegaTotal := g.cumOmoriRate[n-1]
	if omegaTotal < OmegaUnderflowThreshold {
		return 0, nil
	}

	// Step 6: adaptive next-generation magnitude range.
	eTarget := params.GenSizeTarget
	nextMMin := rng.GRInvRate(params.B, params.MRef, params.MMaxSim, eTarget/omegaTotal)
	expected := eTarget
	clamped := false
	if nextMMin <= params.MMinLo {
		nextMMin = params.MMinLo
		clamped = true
	} else if nextMMin > params.MMinHi {
		nextMMin = params.MMinHi
		clamped = true
	}
	if clamped {
		expected = omegaTotal * rng.GRRate(params.B, params.MRef, nextMMin, params.MMaxSim)
	}
	if expected < SmallETerminationThreshold {
		return 0, nil
	}

	// Step 7: Poisson child count.
	k := src.PoissonSample(expected)
	if k <= 0 {
		return 0, nil
	}

	// Step 8: assign each child to a parent by cumulative-weight sampling.
	for c := int64(0); c < k; c++ {
		i := src.CumulativeSample(g.cumOmoriRate[:n])
		g.childCount[i]++
	}

	// Steps 9-11: open the next generation, draw and append each child,
	// close it.
	nextInfo := catalog.GenerationInfo{GenMagMin: nextMMin, GenMagMax: params.MMaxSim}
	if err := b.BeginGeneration(nextInfo); err != nil {
		return 0, err
	}
	for j, parent := range ruptures {
		for c := 0; c < g.childCount[j]; c++ {
			tDay := src.OmoriSampleShifted(params.P, params.C, parent.TDay, params.TBegin, params.TEnd)
			rupMag := src.GRSample(params.B, nextMMin, params.MMaxSim)
			kProd := statkit.CalcKCorr(params.A, params.Alpha, params.B, rupMag, params.MRef, params.MSup, nextMMin, params.MMaxSim)
			child := catalog.Rupture{
				TDay:      tDay,
				RupMag:    rupMag,
				KProd:     kProd,
				RupParent: j,
				XKm:       parent.XKm,
				YKm:       parent.YKm,
			}
			if err := b.AddRup(child); err != nil {
				return 0, err
			}
		}
	}
	if err := b.EndGeneration(); err != nil {
		return 0, err
	}

	return int(k), nil
}

// CalcAllGen drives CalcNextGen to completion: it loops until a
// generation produces zero children or an error occurs, then finalizes
// the catalog with EndCatalog and returns the total generation count.
// params is taken by value when CalcAllGen is called, so edits made to it
// between setup and this call take effect; edits made after the call has
// started are not seen.
//
// On cancellation, CalcAllGen returns the generation count reached so far
// and ErrCancelled; the builder is left CatalogOpen (not finalized) so the
// caller may still call EndCatalog itself or discard it.
func (g *Generator) CalcAllGen(ctx context.Context, b *catalog.Builder, src *rng.Source, params etasparams.CatalogParams) (int, error) {
	for {
		n, err := g.CalcNextGen(ctx, b, src, params)
		if err != nil {
			return b.GenCount(), err
		}
		if n == 0 {
			break
		}
	}
	if err := b.EndCatalog(); err != nil {
		return b.GenCount(), err
	}
	return b.GenCount(), nil
}

func errWrap(err error) error {
	return &cancelWrap{cause: err}
}

type cancelWrap struct{ cause error }

func (e *cancelWrap) Error() string   { return "etassim: cancelled: " + e.cause.Error() }
func (e *cancelWrap) Unwrap() []error { return []error{ErrCancelled, e.cause} }
