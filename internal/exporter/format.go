package exporter

import (
	"strconv"
	"time"
)

// formatFloat renders a float with the shortest representation that
// round-trips, so 13.4 stays 13.4 and rounded variance values keep their
// full precision.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatInt(i int) string {
	return strconv.Itoa(i)
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// formatDate renders YYYY-MM-DD, or empty for the zero time so reports
// without a date dimension leave the column blank.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
