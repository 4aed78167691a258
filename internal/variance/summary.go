package variance

import "sort"

// Summarize rolls a report's aggregates up by depot category, re-summing
// the six measures plus the two GIT measures and deriving the sales ratios.
// reportType labels the resulting summaries so grand totals can regroup
// them. Output is ordered ascending by category.
func Summarize(aggs []Aggregate, reportType string) []SummaryTotal {
	groups := make(map[string]*SummaryTotal)
	categories := make([]string, 0)

	for i := range aggs {
		agg := &aggs[i]
		sum, ok := groups[agg.DepotCategory]
		if !ok {
			sum = &SummaryTotal{ReportType: reportType, Category: agg.DepotCategory}
			groups[agg.DepotCategory] = sum
			categories = append(categories, agg.DepotCategory)
		}
		accumulate(sum, agg)
	}

	sort.Strings(categories)

	out := make([]SummaryTotal, 0, len(categories))
	for _, category := range categories {
		sum := groups[category]
		deriveRatios(sum)
		out = append(out, *sum)
	}
	return out
}

// GrandTotals regroups category summaries by report type into one summary
// per report, with the category set to the SUMMARY tag. Output is ordered
// ascending by report type.
func GrandTotals(summaries []SummaryTotal) []SummaryTotal {
	groups := make(map[string]*SummaryTotal)
	reports := make([]string, 0)

	for i := range summaries {
		s := &summaries[i]
		total, ok := groups[s.ReportType]
		if !ok {
			total = &SummaryTotal{ReportType: s.ReportType, Category: TagSummary}
			groups[s.ReportType] = total
			reports = append(reports, s.ReportType)
		}
		total.PKRDQuantitySum += s.PKRDQuantitySum
		total.PKRDValueTPSum += s.PKRDValueTPSum
		total.NFSIQuantitySum += s.NFSIQuantitySum
		total.NFSIValueSum += s.NFSIValueSum
		total.QuantityVarianceSum += s.QuantityVarianceSum
		total.ValueVarianceSum += s.ValueVarianceSum
		total.GITQuantitySum += s.GITQuantitySum
		total.GITValueSum += s.GITValueSum
	}

	sort.Strings(reports)

	out := make([]SummaryTotal, 0, len(reports))
	for _, report := range reports {
		total := groups[report]
		deriveRatios(total)
		out = append(out, *total)
	}
	return out
}

func accumulate(sum *SummaryTotal, agg *Aggregate) {
	sum.PKRDQuantitySum += agg.TotalPKRDQuantity
	sum.PKRDValueTPSum += agg.TotalPKRDValueTP
	sum.NFSIQuantitySum += agg.TotalNFSIQuantity
	sum.NFSIValueSum += agg.TotalNFSIValue
	sum.QuantityVarianceSum += agg.TotalQuantityVariance
	sum.ValueVarianceSum += agg.TotalValueVarianceTP
	sum.GITQuantitySum += agg.GITQuantity
	sum.GITValueSum += agg.GITValue
}

// deriveRatios fills the three sales ratios. A zero PKRD value sum yields
// zero ratios rather than Inf or NaN so report output stays finite.
func deriveRatios(sum *SummaryTotal) {
	sum.PTDExGIT = sum.ValueVarianceSum - sum.GITValueSum
	sum.PctOfSales = ratio(sum.ValueVarianceSum, sum.PKRDValueTPSum)
	sum.PctOfSalesExGIT = ratio(sum.PTDExGIT, sum.PKRDValueTPSum)
}

func ratio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator * 100
}
