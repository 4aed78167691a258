package warehouse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"finrec/internal/dataprocessing"
	"finrec/internal/variance"
)

func TestRecordRowMergesEnvelope(t *testing.T) {
	envelope := map[string]any{
		"created_ts":     "2023-01-05T14:30:00Z",
		"correlation_id": "deadbeef",
		"record_status":  "ACTIVE",
		"valid_from":     "2023-01-05T14:30:00Z",
	}

	rec := dataprocessing.Record{
		RecordDate:     time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
		SourceType:     dataprocessing.SourcePKRD,
		SKU:            "60330045",
		MoveOrderShort: "MM012345",
		DepotID:        "709",
		PKRDQuantity:   -123,
		PKRDValue:      -560.88,
		Fingerprint:    "abc",
	}

	row := recordRow(envelope, &rec)
	assert.Equal(t, "deadbeef", row["correlation_id"])
	assert.Equal(t, "2023-01-01", row["record_date"])
	assert.Equal(t, "PKRD", row["source_data_type"])
	assert.Equal(t, -123, row["pkrd_quantity"])
	assert.Equal(t, -560.88, row["pkrd_value"])
	assert.Equal(t, "abc", row["fingerprint"])
}

func TestAggregateRowDateHandling(t *testing.T) {
	envelope := map[string]any{"record_status": "ACTIVE"}

	noDate := variance.Aggregate{VarianceType: variance.TagFreshSKU, SKU: "60330045"}
	row := aggregateRow(envelope, &noDate)
	assert.Nil(t, row["record_date"], "reports without a date dimension carry a null date")

	dated := variance.Aggregate{
		VarianceType: variance.TagFrozenDepotDate,
		RecordDate:   time.Date(2023, time.January, 2, 0, 0, 0, 0, time.UTC),
	}
	row = aggregateRow(envelope, &dated)
	assert.Equal(t, "2023-01-02", row["record_date"])
}

func TestSummaryRow(t *testing.T) {
	envelope := map[string]any{"effective_date": "2023-01-31"}

	sum := variance.SummaryTotal{
		ReportType:       "NFSI Frozen",
		Category:         variance.TagSummary,
		PKRDValueTPSum:   -1000,
		ValueVarianceSum: -50,
		PctOfSales:       5,
	}

	row := summaryRow(envelope, &sum)
	assert.Equal(t, "2023-01-31", row["effective_date"])
	assert.Equal(t, "NFSI Frozen", row["report_type"])
	assert.Equal(t, "SUMMARY", row["category"])
	assert.Equal(t, 5.0, row["pct_of_sales"])
}
