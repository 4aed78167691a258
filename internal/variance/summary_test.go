package variance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeRollsUpByCategory(t *testing.T) {
	aggs := []Aggregate{
		{
			DepotCategory:         "NFSI Fresh",
			TotalPKRDQuantity:     -100,
			TotalPKRDValueTP:      -500,
			TotalNFSIQuantity:     90,
			TotalNFSIValue:        450,
			TotalQuantityVariance: -10,
			TotalValueVarianceTP:  -50,
		},
		{
			DepotCategory:         "NFSI Fresh",
			TotalNFSIQuantity:     20,
			TotalNFSIValue:        100,
			TotalQuantityVariance: 20,
			TotalValueVarianceTP:  100,
			IsGIT:                 true,
			GITQuantity:           20,
			GITValue:              100,
		},
	}

	out := Summarize(aggs, "NFSI Fresh")
	require.Len(t, out, 1)

	sum := out[0]
	assert.Equal(t, "NFSI Fresh", sum.ReportType)
	assert.Equal(t, "NFSI Fresh", sum.Category)
	assert.Equal(t, -100, sum.PKRDQuantitySum)
	assert.InDelta(t, -500.0, sum.PKRDValueTPSum, 1e-9)
	assert.Equal(t, 110, sum.NFSIQuantitySum)
	assert.InDelta(t, 550.0, sum.NFSIValueSum, 1e-9)
	assert.Equal(t, 10, sum.QuantityVarianceSum)
	assert.InDelta(t, 50.0, sum.ValueVarianceSum, 1e-9)
	assert.Equal(t, 20, sum.GITQuantitySum)
	assert.InDelta(t, 100.0, sum.GITValueSum, 1e-9)

	// 50 / -500 * 100 and (50-100) / -500 * 100.
	assert.InDelta(t, -10.0, sum.PctOfSales, 1e-9)
	assert.InDelta(t, -50.0, sum.PTDExGIT, 1e-9)
	assert.InDelta(t, 10.0, sum.PctOfSalesExGIT, 1e-9)
}

func TestSummarizeZeroDenominatorYieldsZeroRatios(t *testing.T) {
	aggs := []Aggregate{
		{
			DepotCategory:         "Non-NFSI",
			TotalNFSIQuantity:     5,
			TotalNFSIValue:        25,
			TotalQuantityVariance: 5,
			TotalValueVarianceTP:  25,
			IsGIT:                 true,
			GITQuantity:           5,
			GITValue:              25,
		},
	}

	out := Summarize(aggs, "Non-NFSI")
	require.Len(t, out, 1)
	assert.Zero(t, out[0].PKRDValueTPSum)
	assert.Zero(t, out[0].PctOfSales)
	assert.Zero(t, out[0].PctOfSalesExGIT)
	assert.InDelta(t, 0.0, out[0].PTDExGIT, 1e-9)
}

func TestSummarizeOrdersCategories(t *testing.T) {
	aggs := []Aggregate{
		{DepotCategory: "NFSI Frozen"},
		{DepotCategory: "NFSI Fresh"},
		{DepotCategory: "NFSI Frozen"},
	}

	out := Summarize(aggs, "NFSI Frozen")
	require.Len(t, out, 2)
	assert.Equal(t, "NFSI Fresh", out[0].Category)
	assert.Equal(t, "NFSI Frozen", out[1].Category)
}

func TestGrandTotalsGroupByReportType(t *testing.T) {
	summaries := []SummaryTotal{
		{
			ReportType:          "NFSI Fresh",
			Category:            "NFSI Fresh",
			PKRDQuantitySum:     -100,
			PKRDValueTPSum:      -1000,
			NFSIQuantitySum:     80,
			NFSIValueSum:        800,
			QuantityVarianceSum: -20,
			ValueVarianceSum:    -200,
			GITQuantitySum:      -5,
			GITValueSum:         -50,
		},
		{
			ReportType:          "NFSI Fresh",
			Category:            "NFSI Fresh West",
			PKRDQuantitySum:     -10,
			PKRDValueTPSum:      -100,
			QuantityVarianceSum: -10,
			ValueVarianceSum:    -100,
			GITQuantitySum:      -10,
			GITValueSum:         -100,
		},
		{
			ReportType:     "Non-NFSI",
			Category:       "Non-NFSI",
			PKRDValueTPSum: -400,
		},
	}

	out := GrandTotals(summaries)
	require.Len(t, out, 2)

	fresh := out[0]
	assert.Equal(t, "NFSI Fresh", fresh.ReportType)
	assert.Equal(t, TagSummary, fresh.Category)
	assert.Equal(t, -110, fresh.PKRDQuantitySum)
	assert.InDelta(t, -1100.0, fresh.PKRDValueTPSum, 1e-9)
	assert.InDelta(t, -300.0, fresh.ValueVarianceSum, 1e-9)
	assert.InDelta(t, -150.0, fresh.GITValueSum, 1e-9)
	// -300 / -1100 * 100 and (-300 - -150) / -1100 * 100.
	assert.InDelta(t, 27.272727272727273, fresh.PctOfSales, 1e-9)
	assert.InDelta(t, -150.0, fresh.PTDExGIT, 1e-9)
	assert.InDelta(t, 13.636363636363637, fresh.PctOfSalesExGIT, 1e-9)

	nonNFSI := out[1]
	assert.Equal(t, "Non-NFSI", nonNFSI.ReportType)
	assert.Equal(t, TagSummary, nonNFSI.Category)
	assert.Zero(t, nonNFSI.PctOfSales)
}
