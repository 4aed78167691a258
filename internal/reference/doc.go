// Package reference builds the read-only lookup tables used to enrich
// normalized rows: the depot decode (depot id to name and category) and the
// transfer pricing decode (SKU to unit and case price).
//
// Both tables are built once before normalization starts and are never
// mutated afterwards, so concurrent pipeline branches share them without
// synchronization. Lookup misses are a no-op for the caller: the enrichment
// fields stay absent, the row is never dropped and no error is surfaced.
package reference
