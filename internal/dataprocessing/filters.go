package dataprocessing

import (
	"strings"
	"time"
)

// DateRange is an inclusive reporting window. A zero bound imposes no
// constraint on that side.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the populated bounds.
func (r DateRange) Contains(t time.Time) bool {
	if !r.Start.IsZero() && t.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && t.After(r.End) {
		return false
	}
	return true
}

// IsZero reports whether neither bound is set.
func (r DateRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Filter returns the records for which keep returns true.
func Filter(records []Record, keep func(Record) bool) []Record {
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// ExcludeMoveOrderPrefix keeps records whose move order does not start with
// prefix. Used to drop the ledger's internal "SS" transfer orders.
func ExcludeMoveOrderPrefix(prefix string) func(Record) bool {
	return func(rec Record) bool {
		return !strings.HasPrefix(rec.MoveOrderShort, prefix)
	}
}

// ExcludeDepotIDPrefix keeps records whose depot id does not start with
// prefix. Used to drop the "CSL" consolidation depots from the ledger.
func ExcludeDepotIDPrefix(prefix string) func(Record) bool {
	return func(rec Record) bool {
		return !strings.HasPrefix(rec.DepotID, prefix)
	}
}

// DepotCategoryPrefix keeps records whose depot category starts with prefix.
func DepotCategoryPrefix(prefix string) func(Record) bool {
	return func(rec Record) bool {
		return strings.HasPrefix(rec.DepotCategory, prefix)
	}
}

// InDateRange keeps records whose record date falls inside the range.
func InDateRange(r DateRange) func(Record) bool {
	return func(rec Record) bool {
		return r.Contains(rec.RecordDate)
	}
}
