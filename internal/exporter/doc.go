// Package exporter writes reconciliation outputs as CSV report files.
//
// Each result set lands in its own subdirectory of the output root with a
// date-stamped filename, so repeated runs never overwrite an earlier
// report:
//
//	fin-rec-data/finrecdata-20230105.csv
//	fresh/fresh-var-mo-20230105.csv
//	frozen/frozen-var-depot-sku-20230105.csv
//	report-totals/fin-rec-report-totals-20230105.csv
//
// Files are written with a UTF-8 BOM so Excel opens them cleanly.
package exporter
