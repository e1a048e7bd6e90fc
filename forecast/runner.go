package forecast

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/etasim/catalog"
	"github.com/katalvlaran/etasim/etasparams"
	"github.com/katalvlaran/etasim/etassim"
	"github.com/katalvlaran/etasim/rng"
	"github.com/katalvlaran/etasim/statkit"
)

// Runner runs independent catalog simulations and reduces them into an
// Aggregation. Logger and Metrics are optional; a nil value of either is
// a no-op (Logger via the package's nopLogger, Metrics via the
// package-level NopCollector), so the simulation core never depends on
// them.
type Runner struct {
	Logger  Logger
	Metrics Collector

	// MaxWorkers bounds the simulation worker pool. <= 0 means
	// "unbounded" (errgroup.Group with no SetLimit call).
	MaxWorkers int
}

// NewRunner returns a Runner with no-op logging/metrics and an unbounded
// worker pool.
func NewRunner() *Runner {
	return &Runner{Logger: nopLogger{}, Metrics: NopCollector{}}
}

func (r *Runner) logger() Logger {
	if r.Logger == nil {
		return nopLogger{}
	}
	return r.Logger
}

func (r *Runner) metrics() Collector {
	if r.Metrics == nil {
		return NopCollector{}
	}
	return r.Metrics
}

// Run executes numSim independent simulations of params+seeds, one per
// derived rng.Source stream, and reduces them into cfg's cell grid. It
// fans work out across a worker pool (golang.org/x/sync/errgroup) bounded
// by r.MaxWorkers (unbounded when <= 0): each worker owns its own
// etassim.Generator,
// catalog.Builder, and derived rng.Source, since the simulations are
// independent and share nothing but the final count tally.
//
// seeds must already carry k_prod pre-corrected against [genMin, genMax],
// the magnitude range of generation 0; genMin/genMax bound every seed's
// rup_mag.
func (r *Runner) Run(ctx context.Context, params etasparams.CatalogParams, seeds []catalog.Rupture, genMin, genMax float64, cfg RunConfig, numSim int, rngSeed uint64) (*Aggregation, error) {
	logger := r.logger()
	metrics := r.metrics()

	numCells := cfg.numCells()
	if numCells == 0 || numSim <= 0 {
		return nil, ErrEmptyConfig
	}

	agg := &Aggregation{
		Config: cfg,
		NumSim: numSim,
		Counts: make([][]float64, numCells),
	}
	for i := range agg.Counts {
		agg.Counts[i] = make([]float64, numSim)
	}

	baseSrc := rng.NewSource(rngSeed)
	logger.Info("forecast run starting", "numSim", numSim, "numCells", numCells)

	var mu sync.Mutex
	var totalRuptures int64

	group, gctx := errgroup.WithContext(ctx)
	if r.MaxWorkers > 0 {
		group.SetLimit(r.MaxWorkers)
	}

	for sim := 0; sim < numSim; sim++ {
		sim := sim
		src := rng.DeriveSource(baseSrc, uint64(sim))
		group.Go(func() error {

			b := catalog.NewBuilder()
			genInfo0 := catalog.GenerationInfo{GenMagMin: genMin, GenMagMax: genMax}
			if err := b.BeginCatalog(params, genInfo0, seeds); err != nil {
				return err
			}

			gen := etassim.NewGenerator()
			if _, err := gen.CalcAllGen(gctx, b, src, params); err != nil {
				return err
			}

			counts := countCells(b, cfg)
			mu.Lock()
			for cell, c := range counts {
				agg.Counts[cell][sim] = c
			}
			totalRuptures += int64(b.TotalRuptureCount())
			mu.Unlock()

			metrics.CatalogCompleted(b.TotalRuptureCount())
			if cfg.OnCatalog != nil {
				cfg.OnCatalog(b)
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	statkit.SortEachColumn(agg.Counts)
	agg.TotalRuptures = totalRuptures

	logger.Info("forecast run complete", "totalRuptures", totalRuptures)
	return agg, nil
}

// countCells scans every generation of b and tallies, for each cell in
// cfg, the number of ruptures whose t_day falls in [lag, lag+duration)
// (t_day compared directly, with no offset by the catalog's t_begin) and
// whose rup_mag falls in the
// cell's magnitude bin. All model kinds receive the same count (this
// module implements only ModelETAS; the axis exists for callers adding
// other model families).
func countCells(b *catalog.Builder, cfg RunConfig) []float64 {
	out := make([]float64, cfg.numCells())
	for gi := 0; gi < b.GenCount(); gi++ {
		ruptures, err := b.GenRuptures(gi)
		if err != nil {
			continue
		}
		for _, rup := range ruptures {
			for li, lag := range cfg.Lags {
				for wi, win := range cfg.Windows {
					if rup.TDay < lag || rup.TDay >= lag+win.DurationDays {
						continue
					}
					for bi, bin := range cfg.Bins {
						if !bin.contains(rup.RupMag) {
							continue
						}
						for mi := range cfg.Models {
							out[cfg.cellIndex(mi, li, wi, bi)]++
						}
					}
				}
			}
		}
	}
	return out
}
