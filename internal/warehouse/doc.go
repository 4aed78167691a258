// Package warehouse loads reconciliation results into BigQuery.
//
// Every row is merged with a metadata envelope (ingestion timestamp,
// correlation id, record status) before insert. Canonical records carry a
// valid_from timestamp normalized to the minute; variance and summary rows
// carry the run's effective date instead. All four result sets land in the
// mm_fin_internal dataset.
package warehouse
