package forecast

import (
	"fmt"

	"github.com/katalvlaran/etasim/catalog"
)

// ModelKind names the forecast model family a cell's counts were
// generated under. Only ETAS is implemented by this module; the axis is
// kept so a caller adding another model family later has somewhere to
// put it.
type ModelKind string

// ModelETAS is the only model kind this module produces.
const ModelETAS ModelKind = "ETAS"

// AdvisoryWindow is a prospective time interval, relative to a forecast
// lag, over which event counts are tallied.
type AdvisoryWindow struct {
	Name         string
	DurationDays float64
}

// MagnitudeBin is a closed magnitude range [MMin, MMax] that ruptures are
// classified into.
type MagnitudeBin struct {
	Name string
	MMin float64
	MMax float64
}

// contains reports whether mag falls in [b.MMin, b.MMax].
func (b MagnitudeBin) contains(mag float64) bool {
	return mag >= b.MMin && mag <= b.MMax
}

// RunConfig describes the cell grid a Runner aggregates into. Models,
// Lags, Windows, and Bins together define the axes of Aggregation.Counts;
// every combination is one cell.
type RunConfig struct {
	Models  []ModelKind
	Lags    []float64
	Windows []AdvisoryWindow
	Bins    []MagnitudeBin

	// OnCatalog, if set, is invoked once per completed simulation with
	// the frozen builder before it is discarded, letting a caller inspect
	// or persist every raw catalog without forcing the core to buffer them.
	OnCatalog func(*catalog.Builder)
}

// numCells returns the total cell count for this config.
func (c RunConfig) numCells() int {
	return len(c.Models) * len(c.Lags) * len(c.Windows) * len(c.Bins)
}

// cellIndex maps a (model, lag, window, bin) coordinate to a row index
// into Aggregation.Counts. Row-major over (model, lag, window, bin).
func (c RunConfig) cellIndex(mi, li, wi, bi int) int {
	nw, nb := len(c.Windows), len(c.Bins)
	nl := len(c.Lags)
	return ((mi*nl+li)*nw+wi)*nb + bi
}

// Aggregation is the reduced result of a forecast run: one fixed-capacity
// row of simulated counts per cell, indexable by (model, lag, window,
// bin) via RunConfig.
type Aggregation struct {
	Config RunConfig
	NumSim int

	// Counts[cellIndex][sim] is the number of ruptures simulation sim
	// produced in that cell. Sorted ascending per row after Run returns.
	Counts [][]float64

	// TotalRuptures is the sum of every simulation's total rupture
	// count (seeds included), for reporting.
	TotalRuptures int64
}

// CellKey names one (model, lag, window, bin) combination for reporting.
type CellKey struct {
	Model  ModelKind
	Lag    float64
	Window AdvisoryWindow
	Bin    MagnitudeBin
}

func (k CellKey) String() string {
	return fmt.Sprintf("model=%s lag=%g window=%s bin=%s", k.Model, k.Lag, k.Window.Name, k.Bin.Name)
}

// Cell returns the simulated count row and its CellKey for a given cell
// index, or an error if the index is out of range.
func (a *Aggregation) Cell(idx int) ([]float64, CellKey, error) {
	if idx < 0 || idx >= len(a.Counts) {
		return nil, CellKey{}, ErrCellIndexOutOfRange
	}
	nw, nb := len(a.Config.Windows), len(a.Config.Bins)
	nl := len(a.Config.Lags)
	bi := idx % nb
	rest := idx / nb
	wi := rest % nw
	rest /= nw
	li := rest % nl
	mi := rest / nl
	key := CellKey{
		Model:  a.Config.Models[mi],
		Lag:    a.Config.Lags[li],
		Window: a.Config.Windows[wi],
		Bin:    a.Config.Bins[bi],
	}
	return a.Counts[idx], key, nil
}
