package variance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finrec/internal/dataprocessing"
)

func frozenRecord(source dataprocessing.SourceType, sku string, pkrdQty, nfsiQty int) dataprocessing.Record {
	rec := dataprocessing.Record{
		RecordDate:     time.Date(2023, time.January, 5, 0, 0, 0, 0, time.UTC),
		SourceType:     source,
		SKU:            sku,
		MoveOrderShort: "MM012345",
		DepotID:        "709",
		DepotName:      "Avonmouth",
		DepotCategory:  dataprocessing.SourceFrozen.String(),
		PKRDQuantity:   pkrdQty,
		NFSIQuantity:   nfsiQty,
	}
	rec.PKRDValueTP = float64(pkrdQty) * 1.5
	rec.NFSIValue = float64(nfsiQty) * 1.5
	rec.QuantityVariance = pkrdQty + nfsiQty
	rec.ValueVarianceTP = rec.PKRDValueTP + rec.NFSIValue
	return rec
}

func TestAggregateFiltersSourceAndCategory(t *testing.T) {
	records := []dataprocessing.Record{
		frozenRecord(dataprocessing.SourcePKRD, "60330045", -10, 0),
		frozenRecord(dataprocessing.SourceFrozen, "60330045", 0, 10),
		// Wrong source for a frozen report.
		frozenRecord(dataprocessing.SourceFresh, "60330045", 0, 99),
	}
	// Right source, wrong depot category.
	freshDepot := frozenRecord(dataprocessing.SourceFrozen, "60330045", 0, 77)
	freshDepot.DepotCategory = dataprocessing.SourceFresh.String()
	records = append(records, freshDepot)

	agg := Aggregator{
		Target:     dataprocessing.SourceFrozen,
		Tag:        TagFrozenSKU,
		Dimensions: []Dimension{DimDepotCategory, DimSKU},
	}

	out := agg.Aggregate(records)
	require.Len(t, out, 1)
	assert.Equal(t, TagFrozenSKU, out[0].VarianceType)
	assert.Equal(t, "NFSI Frozen", out[0].DepotCategory)
	assert.Equal(t, "60330045", out[0].SKU)
	assert.Equal(t, -10, out[0].TotalPKRDQuantity)
	assert.Equal(t, 10, out[0].TotalNFSIQuantity)
	assert.Equal(t, 0, out[0].TotalQuantityVariance)
}

func TestAggregateGroupsAndSums(t *testing.T) {
	records := []dataprocessing.Record{
		frozenRecord(dataprocessing.SourcePKRD, "60330045", -10, 0),
		frozenRecord(dataprocessing.SourcePKRD, "60330045", -5, 0),
		frozenRecord(dataprocessing.SourceFrozen, "60330045", 0, 12),
		frozenRecord(dataprocessing.SourcePKRD, "60999999", -3, 0),
	}

	agg := Aggregator{
		Target:     dataprocessing.SourceFrozen,
		Tag:        TagFrozenSKU,
		Dimensions: []Dimension{DimDepotCategory, DimSKU},
	}

	out := agg.Aggregate(records)
	require.Len(t, out, 2)

	// Deterministic ascending order by group key.
	assert.Equal(t, "60330045", out[0].SKU)
	assert.Equal(t, "60999999", out[1].SKU)

	assert.Equal(t, -15, out[0].TotalPKRDQuantity)
	assert.Equal(t, 12, out[0].TotalNFSIQuantity)
	assert.Equal(t, -3, out[0].TotalQuantityVariance)
	assert.InDelta(t, -22.5, out[0].TotalPKRDValueTP, 1e-9)
	assert.InDelta(t, 18.0, out[0].TotalNFSIValue, 1e-9)
	assert.InDelta(t, -4.5, out[0].TotalValueVarianceTP, 1e-9)
	assert.False(t, out[0].IsGIT)

	// Ledger-only group is entirely zero on the receipt side.
	assert.True(t, out[1].IsGIT)
	assert.Equal(t, -3, out[1].GITQuantity)
}

func TestAggregateDimensionsNotGroupedStayZero(t *testing.T) {
	records := []dataprocessing.Record{
		frozenRecord(dataprocessing.SourcePKRD, "60330045", -10, 0),
	}

	agg := Aggregator{
		Target:     dataprocessing.SourceFrozen,
		Tag:        TagFrozenSKU,
		Dimensions: []Dimension{DimDepotCategory, DimSKU},
	}

	out := agg.Aggregate(records)
	require.Len(t, out, 1)
	assert.Empty(t, out[0].DepotID)
	assert.Empty(t, out[0].DepotName)
	assert.Empty(t, out[0].MoveOrderShort)
	assert.True(t, out[0].RecordDate.IsZero())
}

func TestAggregateByDepotDate(t *testing.T) {
	day1 := frozenRecord(dataprocessing.SourcePKRD, "60330045", -10, 0)
	day2 := frozenRecord(dataprocessing.SourcePKRD, "60330045", -4, 0)
	day2.RecordDate = day2.RecordDate.AddDate(0, 0, 1)

	agg := Aggregator{
		Target:     dataprocessing.SourceFrozen,
		Tag:        TagFrozenDepotDate,
		Dimensions: []Dimension{DimDepotCategory, DimDepotID, DimDepotName, DimRecordDate},
	}

	out := agg.Aggregate([]dataprocessing.Record{day1, day2})
	require.Len(t, out, 2)
	assert.Equal(t, day1.RecordDate, out[0].RecordDate)
	assert.Equal(t, day2.RecordDate, out[1].RecordDate)
	assert.Equal(t, "709", out[0].DepotID)
	assert.Equal(t, "Avonmouth", out[0].DepotName)
}

func TestReportsCoverSixTags(t *testing.T) {
	tags := make(map[string]bool)
	for _, r := range Reports() {
		tags[r.Tag] = true
		assert.NotEmpty(t, r.Dimensions)
	}
	assert.Len(t, tags, 6)
	for _, tag := range []string{
		TagFreshMoveOrder, TagFreshSKU, TagFrozenDepotDate,
		TagFrozenDepotSKU, TagFrozenSKU, TagNonNFSIMoveOrder,
	} {
		assert.True(t, tags[tag], tag)
	}
}
