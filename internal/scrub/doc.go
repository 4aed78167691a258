// Package scrub cleans raw string values from tabular source feeds into
// numeric and date primitives.
//
// Source extracts arrive with currency symbols, thousands separators,
// accounting-style negatives ("(56,789.12)") and free-text dates. The
// functions here normalise those values with a deliberate lossy-default
// policy: a value that cannot be parsed yields a documented default (zero, or
// a far-future sentinel date) rather than aborting the run.
//
// Parse failures are reported as *ParseError values carrying the offending
// raw string, so callers can choose between log-and-default (the ...OrZero
// and ...OrDefault helpers) and escalation.
package scrub
