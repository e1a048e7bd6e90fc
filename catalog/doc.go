// Package catalog defines the Rupture and GenerationInfo value types and
// the append-only, generation-partitioned Catalog store.
//
// Storage strategy: a single contiguous rupture buffer plus a
// per-generation (offset, length, info) index, giving O(1) random access
// to any rupture by (generation index, rupture index) and amortized O(1)
// append — cache-friendly scans for the per-generation loop in the catalog
// generator, no pointer-chasing jagged arrays.
//
// Ownership: a Builder exclusively owns its rupture storage. Readers
// receive copies (values, or freshly allocated slices), never references
// into internal slices.
//
// Lifecycle (a strict state machine — violations are programming errors
// and return ErrProtocolMisuse rather than silently corrupting state):
//
//	Empty -> BeginCatalog -> CatalogOpen
//	CatalogOpen -> BeginGeneration -> GenerationOpen
//	GenerationOpen -> AddRup* -> EndGeneration -> CatalogOpen
//	CatalogOpen -> EndCatalog -> Frozen
//	(any state) -> Clear -> Empty
package catalog
