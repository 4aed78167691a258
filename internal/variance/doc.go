// Package variance aggregates canonical reconciliation records into the six
// variance reports and rolls those up into category and grand-total
// summaries.
//
// An Aggregator is parameterized by a target receipt source and a list of
// grouping dimensions. It filters the flattened record set to ledger rows
// plus rows of the target source, keeps only rows whose depot category
// matches the target, groups by the dimensions and sums the six numeric
// measures. Each aggregate is then classified for goods-in-transit: when
// exactly one side of the reconciliation is entirely zero the whole variance
// is attributed to transit lag rather than a genuine discrepancy.
//
// Summarize rolls a report's aggregates up by depot category and derives the
// percentage-of-sales metrics; GrandTotals rolls the category summaries up
// once more by report type. Output ordering is deterministic so repeated
// runs over the same snapshot produce identical report files.
package variance
