// Package dataprocessing normalizes heterogeneous movement and receipt rows
// into the canonical reconciliation record.
//
// The package is organized around the pre-join / post-join split:
//
//  1. Normalize maps a source row (physical column names, raw strings) into
//     a SourceRow: parsed date, shared-namespace SKU, depot id, move order
//     and the raw measure strings, all derived per source type.
//  2. Enrichment attaches depot and pricing reference attributes by key
//     lookup, never failing on a miss.
//  3. LeftJoin recovers identity fields across extracts (order numbers on
//     ledger rows, the shared sku/moveorder identity on receipt rows) by
//     merging the first matching right-side row into each left row.
//  4. BuildRecord finishes the canonical Record once joins are complete:
//     quantities, values, variances and the content fingerprint.
//
// Every step is a pure function of its inputs plus the read-only reference
// tables, so rows can be processed on any number of goroutines without
// coordination.
package dataprocessing
