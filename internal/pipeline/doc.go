// Package pipeline orchestrates a reconciliation run.
//
// A run reads the seven input extracts, builds the two reference tables
// once, then processes the four movement/receipt branches concurrently:
// normalize, enrich with reference data, join to the sales extract to
// recover identity fields, and build canonical records. The flattened
// record set feeds the six variance reports and the summary rollups.
//
// The branches share only the read-only reference tables and the sales
// rows, so they run in parallel without coordination beyond the final
// gather.
package pipeline
