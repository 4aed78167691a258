// Package ingest reads the tabular source extracts into row maps.
//
// Each source arrives as a CSV extract (the transfer pricing reference may
// also arrive as an Excel workbook). Rows are surfaced as maps of physical
// column name to raw string value; the downstream normalizer owns all value
// interpretation. Rows whose field count does not match the header are
// tagged rather than dropped here, so callers can filter and report them.
package ingest
