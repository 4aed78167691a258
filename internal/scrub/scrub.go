package scrub

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the day-first layout used by every source feed.
const DateFormat = "02/01/2006"

// MaxDate is the far-future sentinel assigned to unparseable record dates so
// malformed rows sort last instead of failing the run.
var MaxDate = time.Date(2099, time.December, 31, 0, 0, 0, 0, time.UTC)

// ParseError describes a value that could not be scrubbed into its target
// type. It keeps the raw input so diagnostics can show exactly what arrived.
type ParseError struct {
	Raw  string // original input before cleaning
	Kind string // target kind: "float", "int", "date"
	Err  error  // underlying parse error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as %s: %v", e.Raw, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// CleanNumeric strips everything from a raw value that is not part of a
// number: currency symbols, thousands separators, alphabetic characters and
// all punctuation except '.' and '-'. An opening parenthesis becomes a
// leading minus sign (accounting negative notation).
func CleanNumeric(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		case r == '(':
			b.WriteRune('-')
		}
	}
	return b.String()
}

// Float scrubs a currency or quantity string and parses it as a float,
// rounded to 5 decimal places.
func Float(raw string) (float64, error) {
	clean := CleanNumeric(raw)
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, &ParseError{Raw: raw, Kind: "float", Err: err}
	}
	return Round(v, 5), nil
}

// FloatOrZero scrubs and parses raw, logging a diagnostic and returning 0
// when the value cannot be parsed.
func FloatOrZero(logger *slog.Logger, raw string) float64 {
	v, err := Float(raw)
	if err != nil {
		logger.Warn("defaulting unparseable value to 0",
			slog.String("raw", raw),
			slog.String("kind", "float"))
		return 0
	}
	return v
}

// Int scrubs a string and parses its integer part, truncating anything after
// a decimal point.
func Int(raw string) (int, error) {
	clean := CleanNumeric(raw)
	if i := strings.IndexByte(clean, '.'); i >= 0 {
		clean = clean[:i]
	}
	v, err := strconv.Atoi(clean)
	if err != nil {
		return 0, &ParseError{Raw: raw, Kind: "int", Err: err}
	}
	return v, nil
}

// IntOrZero scrubs and parses raw, logging a diagnostic and returning 0 when
// the value cannot be parsed.
func IntOrZero(logger *slog.Logger, raw string) int {
	v, err := Int(raw)
	if err != nil {
		logger.Warn("defaulting unparseable value to 0",
			slog.String("raw", raw),
			slog.String("kind", "int"))
		return 0
	}
	return v
}

// Date parses a dd/mm/yyyy value.
func Date(raw string) (time.Time, error) {
	t, err := time.Parse(DateFormat, raw)
	if err != nil {
		return time.Time{}, &ParseError{Raw: raw, Kind: "date", Err: err}
	}
	return t, nil
}

// DateOrDefault parses a dd/mm/yyyy value, returning def on empty input or
// format mismatch. Mismatches are logged; empty input is not, since several
// feeds legitimately omit dates.
func DateOrDefault(logger *slog.Logger, raw string, def time.Time) time.Time {
	if raw == "" {
		return def
	}
	t, err := Date(raw)
	if err != nil {
		logger.Warn("defaulting unparseable date",
			slog.String("raw", raw),
			slog.Time("default", def))
		return def
	}
	return t
}

// Desc scrubs free-text descriptions, removing quotation marks and trailing
// whitespace or newlines.
func Desc(raw string) string {
	return strings.TrimRight(strings.ReplaceAll(raw, `"`, ""), " \t\r\n")
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
