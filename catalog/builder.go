package catalog

import "github.com/katalvlaran/etasim/etasparams"

// state is the Builder's current lifecycle state.
type state int

const (
	stateEmpty state = iota
	stateCatalogOpen
	stateGenerationOpen
	stateFrozen
)

// genEntry indexes one generation into the shared rupture buffer: a
// contiguous [offset, offset+length) slice plus its GenerationInfo. A
// single growing buffer with a per-generation index avoids the
// allocation churn of one slice per generation.
type genEntry struct {
	offset int
	length int
	info   GenerationInfo
}

// Builder is an append-only, generation-partitioned catalog store. A
// Builder is single-owner: only one goroutine may drive it at a time.
// Zero value is ready to use (state Empty).
type Builder struct {
	state    state
	params   etasparams.CatalogParams
	ruptures []Rupture
	gens     []genEntry
}

// NewBuilder returns a Builder in the Empty state.
func NewBuilder() *Builder {
	return &Builder{}
}

// BeginCatalog transitions Empty -> CatalogOpen, validating params and
// establishing generation 0 from seeds under genInfo0. Seed ruptures are
// expected to already carry a pre-corrected KProd against genInfo0's
// magnitude range; BeginCatalog does not compute or adjust it.
//
// Returns etasparams.ErrInvariantViolated (wrapped) if params fail
// Validate, ErrInvalidGenerationInfo if genInfo0 is malformed, or
// ErrProtocolMisuse if the Builder is not in the Empty state.
func (b *Builder) BeginCatalog(params etasparams.CatalogParams, genInfo0 GenerationInfo, seeds []Rupture) error {
	if b.state != stateEmpty {
		return ErrProtocolMisuse
	}
	if err := params.Validate(); err != nil {
		return err
	}
	if err := genInfo0.Validate(); err != nil {
		return err
	}

	b.params = params
	b.ruptures = b.ruptures[:0]
	b.gens = b.gens[:0]
	b.state = stateCatalogOpen

	if err := b.BeginGeneration(genInfo0); err != nil {
		return err
	}
	for _, r := range seeds {
		if err := b.AddRup(r); err != nil {
			return err
		}
	}
	return b.EndGeneration()
}

// BeginGeneration transitions CatalogOpen -> GenerationOpen, opening a
// new generation whose ruptures are appended via AddRup.
func (b *Builder) BeginGeneration(info GenerationInfo) error {
	if b.state != stateCatalogOpen {
		return ErrProtocolMisuse
	}
	if err := info.Validate(); err != nil {
		return err
	}
	b.gens = append(b.gens, genEntry{offset: len(b.ruptures), length: 0, info: info})
	b.state = stateGenerationOpen
	return nil
}

// AddRup appends a rupture to the currently-open generation. Valid only
// in GenerationOpen state. Does not itself re-check magnitude bounds,
// productivity sign, or parent-index validity (the caller — the catalog
// generator — is responsible for producing valid draws); AddRup's job is
// O(1) amortized append, not validation.
func (b *Builder) AddRup(r Rupture) error {
	if b.state != stateGenerationOpen {
		return ErrProtocolMisuse
	}
	b.ruptures = append(b.ruptures, r)
	b.gens[len(b.gens)-1].length++
	return nil
}

// EndGeneration transitions GenerationOpen -> CatalogOpen, closing the
// current generation to further appends.
func (b *Builder) EndGeneration() error {
	if b.state != stateGenerationOpen {
		return ErrProtocolMisuse
	}
	b.state = stateCatalogOpen
	return nil
}

// EndCatalog transitions CatalogOpen -> Frozen. Once frozen, the catalog
// accepts only read queries and Clear.
func (b *Builder) EndCatalog() error {
	if b.state != stateCatalogOpen {
		return ErrProtocolMisuse
	}
	b.state = stateFrozen
	return nil
}

// Clear resets the Builder to Empty from any state, discarding all data
// but reusing the underlying backing arrays on the next BeginCatalog.
func (b *Builder) Clear() {
	b.state = stateEmpty
	b.ruptures = b.ruptures[:0]
	b.gens = b.gens[:0]
	b.params = etasparams.CatalogParams{}
}

// IsFrozen reports whether EndCatalog has been called.
func (b *Builder) IsFrozen() bool { return b.state == stateFrozen }

// GenCount returns the number of generations appended so far. Valid in
// CatalogOpen, GenerationOpen (counts the in-progress generation), and
// Frozen.
func (b *Builder) GenCount() int {
	return len(b.gens)
}

// GenSize returns the number of ruptures in generation gi.
func (b *Builder) GenSize(gi int) (int, error) {
	if gi < 0 || gi >= len(b.gens) {
		return 0, ErrIndexOutOfRange
	}
	return b.gens[gi].length, nil
}

// GenInfo returns a copy of generation gi's GenerationInfo.
func (b *Builder) GenInfo(gi int) (GenerationInfo, error) {
	if gi < 0 || gi >= len(b.gens) {
		return GenerationInfo{}, ErrIndexOutOfRange
	}
	return b.gens[gi].info, nil
}

// Rup returns a copy of rupture ri within generation gi. Callers never
// receive a pointer into internal storage, so the buffer stays free to
// grow without invalidating anything a caller is holding.
func (b *Builder) Rup(gi, ri int) (Rupture, error) {
	if gi < 0 || gi >= len(b.gens) {
		return Rupture{}, ErrIndexOutOfRange
	}
	g := b.gens[gi]
	if ri < 0 || ri >= g.length {
		return Rupture{}, ErrIndexOutOfRange
	}
	return b.ruptures[g.offset+ri], nil
}

// GenRuptures returns a copy of every rupture in generation gi, in
// insertion order. Useful for a per-generation scan without a Rup call
// per index.
func (b *Builder) GenRuptures(gi int) ([]Rupture, error) {
	if gi < 0 || gi >= len(b.gens) {
		return nil, ErrIndexOutOfRange
	}
	g := b.gens[gi]
	out := make([]Rupture, g.length)
	copy(out, b.ruptures[g.offset:g.offset+g.length])
	return out, nil
}

// CatParams returns a copy of the validated CatalogParams this catalog
// was built with.
func (b *Builder) CatParams() (etasparams.CatalogParams, error) {
	if b.state == stateEmpty {
		return etasparams.CatalogParams{}, ErrProtocolMisuse
	}
	return b.params, nil
}

// TotalRuptureCount returns the total number of ruptures across every
// generation (seeds included).
func (b *Builder) TotalRuptureCount() int {
	return len(b.ruptures)
}
