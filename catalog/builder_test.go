package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/etasim/etasparams"
)

func validParams() etasparams.CatalogParams {
	return etasparams.CatalogParams{
		A: -1, P: 1.1, C: 0.01, B: 1.0, Alpha: 1.0,
		MRef: 3, MSup: 8, MMinLo: 3, MMinHi: 3, MMaxSim: 8,
		TBegin: 0, TEnd: 30, TEps: 1e-3,
		GenSizeTarget: 100, GenCountMax: 10,
	}
}

func TestBuilderLifecycleHappyPath(t *testing.T) {
	b := NewBuilder()
	seed := Rupture{TDay: 0, RupMag: 5, KProd: 1.0, RupParent: -1}
	require.NoError(t, b.BeginCatalog(validParams(), GenerationInfo{GenMagMin: 5, GenMagMax: 5}, []Rupture{seed}))
	require.Equal(t, 1, b.GenCount())

	require.NoError(t, b.BeginGeneration(GenerationInfo{GenMagMin: 3, GenMagMax: 8}))
	require.NoError(t, b.AddRup(Rupture{TDay: 1, RupMag: 4, KProd: 0.5, RupParent: 0}))
	require.NoError(t, b.EndGeneration())
	require.Equal(t, 2, b.GenCount())

	size, err := b.GenSize(1)
	require.NoError(t, err)
	assert.Equal(t, 1, size)

	r, err := b.Rup(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 4.0, r.RupMag)

	require.NoError(t, b.EndCatalog())
	assert.True(t, b.IsFrozen())

	// Reads still work once frozen.
	_, err = b.GenInfo(0)
	require.NoError(t, err)
}

func TestBuilderProtocolMisuse(t *testing.T) {
	b := NewBuilder()
	// AddRup before BeginCatalog.
	err := b.AddRup(Rupture{})
	require.True(t, errors.Is(err, ErrProtocolMisuse))

	require.NoError(t, b.BeginCatalog(validParams(), GenerationInfo{GenMagMin: 5, GenMagMax: 5}, nil))

	// EndGeneration while CatalogOpen (no generation open).
	err = b.EndGeneration()
	require.True(t, errors.Is(err, ErrProtocolMisuse))

	// BeginGeneration twice in a row without EndGeneration.
	require.NoError(t, b.BeginGeneration(GenerationInfo{GenMagMin: 3, GenMagMax: 8}))
	err = b.BeginGeneration(GenerationInfo{GenMagMin: 3, GenMagMax: 8})
	require.True(t, errors.Is(err, ErrProtocolMisuse))
}

func TestBuilderInvalidParamsRejected(t *testing.T) {
	b := NewBuilder()
	bad := validParams()
	bad.C = 0 // violates c > 0
	err := b.BeginCatalog(bad, GenerationInfo{GenMagMin: 5, GenMagMax: 5}, nil)
	require.True(t, errors.Is(err, etasparams.ErrInvariantViolated))
}

func TestBuilderClearResets(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.BeginCatalog(validParams(), GenerationInfo{GenMagMin: 5, GenMagMax: 5}, nil))
	b.Clear()
	assert.Equal(t, 0, b.GenCount())
	// Can begin a fresh catalog after Clear.
	require.NoError(t, b.BeginCatalog(validParams(), GenerationInfo{GenMagMin: 5, GenMagMax: 5}, nil))
}

func TestGenRuptures(t *testing.T) {
	b := NewBuilder()
	seeds := []Rupture{{RupMag: 5, RupParent: -1}, {RupMag: 5.2, RupParent: -1}}
	require.NoError(t, b.BeginCatalog(validParams(), GenerationInfo{GenMagMin: 5, GenMagMax: 5.2}, seeds))
	got, err := b.GenRuptures(0)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
