package etasparams

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseParams() CatalogParams {
	return CatalogParams{
		A: -1, P: 1.1, C: 0.01, B: 1.0, Alpha: 1.0,
		MRef: 3, MSup: 8, MMinLo: 3, MMinHi: 3, MMaxSim: 8,
		TBegin: 0, TEnd: 30, TEps: 1e-3,
		GenSizeTarget: 100, GenCountMax: 10,
	}
}

func TestValidateAcceptsWellFormedParams(t *testing.T) {
	require.NoError(t, baseParams().Validate())
}

func TestValidateRejectsEachInvariant(t *testing.T) {
	cases := map[string]func(*CatalogParams){
		"mref>mminlo":   func(p *CatalogParams) { p.MRef = p.MMinLo + 1 },
		"mminlo>mminhi": func(p *CatalogParams) { p.MMinLo = p.MMinHi + 1 },
		"mminhi>mmax":   func(p *CatalogParams) { p.MMinHi = p.MMaxSim + 1 },
		"mmax>msup":     func(p *CatalogParams) { p.MMaxSim = p.MSup + 1 },
		"c<=0":          func(p *CatalogParams) { p.C = 0 },
		"b<=0":          func(p *CatalogParams) { p.B = 0 },
		"tbegin>=tend":  func(p *CatalogParams) { p.TBegin = p.TEnd },
		"teps<0":        func(p *CatalogParams) { p.TEps = -1 },
		"gensize<1":     func(p *CatalogParams) { p.GenSizeTarget = 0 },
		"gencountmax<1": func(p *CatalogParams) { p.GenCountMax = 0 },
	}
	for name, mutate := range cases {
		p := baseParams()
		mutate(&p)
		err := p.Validate()
		assert.Error(t, err, name)
		assert.True(t, errors.Is(err, ErrInvariantViolated), name)
	}
}

func TestValidateDoesNotEnforceP(t *testing.T) {
	p := baseParams()
	p.P = 50 // outside the "typical" range, still accepted (spec: not enforced)
	require.NoError(t, p.Validate())
}
