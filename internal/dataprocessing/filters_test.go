package dataprocessing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateRangeContains(t *testing.T) {
	full := DateRange{Start: day(2023, 1, 1), End: day(2023, 1, 31)}
	assert.True(t, full.Contains(day(2023, 1, 1)))
	assert.True(t, full.Contains(day(2023, 1, 31)))
	assert.False(t, full.Contains(day(2023, 2, 1)))
	assert.False(t, full.Contains(day(2022, 12, 31)))

	openStart := DateRange{End: day(2023, 1, 31)}
	assert.True(t, openStart.Contains(day(1999, 1, 1)))
	assert.False(t, openStart.Contains(day(2023, 2, 1)))

	openEnd := DateRange{Start: day(2023, 1, 1)}
	assert.True(t, openEnd.Contains(day(2099, 12, 31)))
	assert.False(t, openEnd.Contains(day(2022, 12, 31)))

	unbounded := DateRange{}
	assert.True(t, unbounded.IsZero())
	assert.True(t, unbounded.Contains(day(1900, 1, 1)))
}

func TestExcludeFilters(t *testing.T) {
	records := []Record{
		{MoveOrderShort: "SS0001", DepotID: "709"},
		{MoveOrderShort: "MM0001", DepotID: "CSL01"},
		{MoveOrderShort: "MM0002", DepotID: "710"},
	}

	kept := Filter(records, ExcludeMoveOrderPrefix("SS"))
	assert.Len(t, kept, 2)

	kept = Filter(kept, ExcludeDepotIDPrefix("CSL"))
	assert.Len(t, kept, 1)
	assert.Equal(t, "MM0002", kept[0].MoveOrderShort)
}

func TestDepotCategoryPrefix(t *testing.T) {
	records := []Record{
		{DepotCategory: "Non-NFSI"},
		{DepotCategory: "Non-NFSI East"},
		{DepotCategory: "NFSI Fresh"},
		{DepotCategory: ""},
	}

	kept := Filter(records, DepotCategoryPrefix("Non-NFSI"))
	assert.Len(t, kept, 2)
}

func TestInDateRange(t *testing.T) {
	records := []Record{
		{RecordDate: day(2023, 1, 15)},
		{RecordDate: day(2023, 3, 1)},
	}

	kept := Filter(records, InDateRange(DateRange{Start: day(2023, 1, 1), End: day(2023, 1, 31)}))
	assert.Len(t, kept, 1)
	assert.Equal(t, day(2023, 1, 15), kept[0].RecordDate)
}
