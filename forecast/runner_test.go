package forecast

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/etasim/catalog"
	"github.com/katalvlaran/etasim/etasparams"
)

func baseRunParams() etasparams.CatalogParams {
	return etasparams.CatalogParams{
		Alpha: 1, B: 1, P: 1.1, C: 0.01,
		MRef: 3, MSup: 8, MMinLo: 3, MMinHi: 3, MMaxSim: 8,
		TBegin: 0, TEnd: 30, TEps: 1e-3,
		GenSizeTarget: 100, GenCountMax: 6,
	}
}

func basicConfig() RunConfig {
	return RunConfig{
		Models: []ModelKind{ModelETAS},
		Lags:   []float64{0},
		Windows: []AdvisoryWindow{
			{Name: "30d", DurationDays: 30},
		},
		Bins: []MagnitudeBin{
			{Name: "all", MMin: 3, MMax: 8},
		},
	}
}

func TestRunProducesSortedCountsPerCell(t *testing.T) {
	params := baseRunParams()
	params.A = -2 // comfortably sub-critical, finishes fast

	seed := catalog.Rupture{TDay: 0, RupMag: 5, KProd: 1, RupParent: -1}
	runner := NewRunner()
	agg, err := runner.Run(context.Background(), params, []catalog.Rupture{seed}, 5, 5, basicConfig(), 20, 42)
	require.NoError(t, err)
	require.Equal(t, 1, len(agg.Counts))
	require.Equal(t, 20, agg.NumSim)

	row, key, err := agg.Cell(0)
	require.NoError(t, err)
	assert.Equal(t, ModelETAS, key.Model)
	for i := 1; i < len(row); i++ {
		assert.GreaterOrEqual(t, row[i], row[i-1])
	}
}

func TestRunRespectsCancellation(t *testing.T) {
	params := baseRunParams()
	params.A = -2
	seed := catalog.Rupture{TDay: 0, RupMag: 5, KProd: 1, RupParent: -1}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := NewRunner()
	_, err := runner.Run(ctx, params, []catalog.Rupture{seed}, 5, 5, basicConfig(), 4, 7)
	require.Error(t, err)
}

func TestRunRejectsEmptyConfig(t *testing.T) {
	runner := NewRunner()
	_, err := runner.Run(context.Background(), baseRunParams(), nil, 5, 5, RunConfig{}, 10, 1)
	require.ErrorIs(t, err, ErrEmptyConfig)
}

func TestAggregationFractileAndGammaBounds(t *testing.T) {
	agg := &Aggregation{
		Config: basicConfig(),
		NumSim: 5,
		Counts: [][]float64{{0, 1, 2, 3, 10}},
	}
	median, err := agg.Median(0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, median)

	lo, hi, err := agg.GammaBounds(0, 2)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/5.0, lo, 1e-9) // strictly > 2: {3,10}
	assert.InDelta(t, 3.0/5.0, hi, 1e-9) // >= 2: {2,3,10}
}

func TestDeterminismAcrossForecastRuns(t *testing.T) {
	params := baseRunParams()
	params.A = -2
	seed := catalog.Rupture{TDay: 0, RupMag: 5, KProd: 1, RupParent: -1}

	run := func() *Aggregation {
		runner := NewRunner()
		agg, err := runner.Run(context.Background(), params, []catalog.Rupture{seed}, 5, 5, basicConfig(), 10, 0xDEADBEEF)
		require.NoError(t, err)
		return agg
	}

	a1, a2 := run(), run()
	assert.Equal(t, a1.Counts, a2.Counts)
	assert.Equal(t, a1.TotalRuptures, a2.TotalRuptures)
}
