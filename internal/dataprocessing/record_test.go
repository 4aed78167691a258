package dataprocessing

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finrec/internal/config"
	"finrec/internal/ingest"
	"finrec/internal/reference"
)

func ledgerScenarioRow(t *testing.T) *SourceRow {
	t.Helper()

	m := config.DefaultMappings()
	depots := reference.NewDepotTable([]ingest.Row{
		{"depot_id": "709", "depot_name": "Depot A", "depot_category": "NFSI Fresh"},
	})

	r := Normalize(slog.Default(), SourcePKRD, m.PKRD, ingest.Row{
		"Move Date":        "01/01/2023",
		"Item No.":         "60330045",
		"Move Order":       "MM012345/005",
		"Store":            "709",
		"SMS_ORDER_NUMBER": "8811223",
		"Qty":              "-123",
		"Value":            "-560.88",
	})
	EnrichDepot(r, depots)
	return r
}

func TestBuildRecordLedgerScenario(t *testing.T) {
	rec := BuildRecord(slog.Default(), ledgerScenarioRow(t))

	assert.Equal(t, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), rec.RecordDate)
	assert.Equal(t, SourcePKRD, rec.SourceType)
	assert.Equal(t, "60330045", rec.SKU)
	assert.Equal(t, "MM012345", rec.MoveOrderShort)
	assert.Equal(t, "709", rec.DepotID)
	assert.Equal(t, "Depot A", rec.DepotName)
	assert.Equal(t, "NFSI Fresh", rec.DepotCategory)
	assert.Equal(t, "60330045_MM012345", rec.SKUMoveOrder)
	assert.Equal(t, -123, rec.PKRDQuantity)
	assert.InDelta(t, -560.88, rec.PKRDValue, 1e-9)

	// Receipt-side measures stay zero on ledger rows.
	assert.Zero(t, rec.NFSIQuantity)
	assert.Zero(t, rec.NFSIValue)

	assert.Equal(t, -123, rec.QuantityVariance)
	assert.InDelta(t, -560.88, rec.ValueVariance, 1e-9)
}

func TestBuildRecordValueTP(t *testing.T) {
	r := ledgerScenarioRow(t)
	r.CasePrice = 4.56789

	rec := BuildRecord(slog.Default(), r)
	// pkrd_value_tp = round(qty * case_price, 5)
	assert.InDelta(t, -561.85047, rec.PKRDValueTP, 1e-9)
	assert.InDelta(t, -561.8505, rec.ValueVarianceTP, 1e-9)
}

func TestBuildRecordReceiptRow(t *testing.T) {
	m := config.DefaultMappings()

	r := Normalize(slog.Default(), SourceFrozen, m.Frozen, ingest.Row{
		"ACTUAL_TRAN_DATE": "15/02/2023",
		"LPC":              "330045",
		"SORDNO_ITM1":      "MM012345/005",
		"DEPOT":            "FD710",
		"ORDER_NO":         "556677",
		"PACKS_RECEIVED":   "567",
		"TOTAL_COST":       "3963.33",
	})
	rec := BuildRecord(slog.Default(), r)

	assert.Equal(t, SourceFrozen, rec.SourceType)
	assert.Equal(t, "60330045", rec.SKU)
	assert.Equal(t, "710", rec.DepotID)
	assert.Equal(t, 567, rec.NFSIQuantity)
	assert.InDelta(t, 3963.33, rec.NFSIValue, 1e-9)

	// Ledger-side measures stay zero on receipt rows.
	assert.Zero(t, rec.PKRDQuantity)
	assert.Zero(t, rec.PKRDValue)
	assert.Zero(t, rec.PKRDValueTP)
	assert.Zero(t, rec.LotNumber)

	assert.Equal(t, 567, rec.QuantityVariance)
	assert.InDelta(t, 3963.33, rec.ValueVarianceTP, 1e-9)
}

func TestBuildRecordPicksUpJoinRecoveredOrder(t *testing.T) {
	r := ledgerScenarioRow(t)
	r.OrderNumber = "9900001" // recovered from the sales join

	rec := BuildRecord(slog.Default(), r)
	assert.Equal(t, "9900001", rec.OrderID)
	assert.Equal(t, "60330045_9900001", rec.SKUAndOrder)
}

func TestFingerprintDeterministic(t *testing.T) {
	a := BuildRecord(slog.Default(), ledgerScenarioRow(t))
	b := BuildRecord(slog.Default(), ledgerScenarioRow(t))

	require.NotEmpty(t, a.Fingerprint)
	assert.Len(t, a.Fingerprint, 64)
	assert.Equal(t, a.Fingerprint, b.Fingerprint)
}

func TestFingerprintChangesWithHashedFields(t *testing.T) {
	base := BuildRecord(slog.Default(), ledgerScenarioRow(t))

	mutations := map[string]func(*SourceRow){
		"record_date": func(r *SourceRow) { r.RecordDate = r.RecordDate.AddDate(0, 0, 1) },
		"source_type": func(r *SourceRow) { r.Type = SourceFresh },
		"sku":         func(r *SourceRow) { r.SKU = "60330046" },
		"depot_id":    func(r *SourceRow) { r.DepotID = "710" },
		"lot_number":  func(r *SourceRow) { r.LotNumber = "L-1" },
		"quantity":    func(r *SourceRow) { r.PKRDQuantityRaw = "-124" },
		"order":       func(r *SourceRow) { r.OrderNumber = "distinct" },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			r := ledgerScenarioRow(t)
			mutate(r)
			rec := BuildRecord(slog.Default(), r)
			assert.NotEqual(t, base.Fingerprint, rec.Fingerprint)
		})
	}
}

func TestBuildRecordDefaultsUnparseableMeasures(t *testing.T) {
	r := ledgerScenarioRow(t)
	r.PKRDQuantityRaw = "invalid"
	r.PKRDValueRaw = "also invalid"

	rec := BuildRecord(slog.Default(), r)
	assert.Zero(t, rec.PKRDQuantity)
	assert.Zero(t, rec.PKRDValue)
}
