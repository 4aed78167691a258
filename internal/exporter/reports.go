package exporter

import (
	"fmt"
	"path/filepath"

	"finrec/internal/dataprocessing"
	"finrec/internal/reference"
	"finrec/internal/variance"
)

var recordHeaders = []string{
	"record_date", "source_data_type", "sku", "moveorder_short", "lot_number",
	"depot_id", "depot_name", "depot_category", "sku_moveorder", "order_id",
	"sku_and_order", "pkrd_unit_price", "pkrd_case_price", "pkrd_quantity",
	"pkrd_value", "pkrd_value_tp", "nfsi_quantity", "nfsi_value",
	"quantity_variance", "value_variance", "value_variance_tp", "fingerprint",
}

var varianceHeaders = []string{
	"variance_type", "record_date", "depot_id", "depot_name", "depot_category",
	"total_pkrd_quantity", "total_pkrd_value_tp", "total_nfsi_quantity",
	"total_nfsi_value", "total_quantity_variance", "total_value_variance_tp",
	"moveorder_short", "sku", "is_git", "git_quantity", "git_value",
}

var summaryHeaders = []string{
	"report_type", "category", "pkrd_quantity_sum", "pkrd_value_tp_sum",
	"nfsi_quantity_sum", "nfsi_value_sum", "quantity_variance_sum",
	"value_variance_sum", "git_quantity_sum", "git_value_sum",
	"pct_of_sales", "ptd_ex_git", "pct_of_sales_ex_git",
}

var pricingHeaders = []string{
	"pricing_date", "sku", "min", "pin", "long_desc", "room", "room_two",
	"trading_category", "pack_weight", "case_size", "case_weight",
	"rm", "pack", "lab", "dist", "oh", "depot_loss", "total",
	"rm_case", "pack_case", "lab_case", "dist_case", "oh_case",
	"depot_loss_case", "total_case",
}

// variancePaths maps a report tag to its subdirectory and filename prefix.
var variancePaths = map[string][2]string{
	variance.TagFrozenDepotSKU:   {"frozen", "frozen-var-depot-sku"},
	variance.TagFreshSKU:         {"fresh", "fresh-var-sku"},
	variance.TagFrozenSKU:        {"frozen", "frozen-var-sku"},
	variance.TagFreshMoveOrder:   {"fresh", "fresh-var-mo"},
	variance.TagNonNFSIMoveOrder: {"non-nfsi", "non-nfsi-var-mo"},
	variance.TagFrozenDepotDate:  {"frozen", "frozen-var-depot-date"},
}

// WriteRecords writes the flattened canonical record set.
func (w *CSVWriter) WriteRecords(records []dataprocessing.Record) error {
	rows := make([][]string, 0, len(records))
	for i := range records {
		r := &records[i]
		rows = append(rows, []string{
			formatDate(r.RecordDate),
			r.SourceType.String(),
			r.SKU,
			r.MoveOrderShort,
			r.LotNumber,
			r.DepotID,
			r.DepotName,
			r.DepotCategory,
			r.SKUMoveOrder,
			r.OrderID,
			r.SKUAndOrder,
			formatFloat(r.PKRDUnitPrice),
			formatFloat(r.PKRDCasePrice),
			formatInt(r.PKRDQuantity),
			formatFloat(r.PKRDValue),
			formatFloat(r.PKRDValueTP),
			formatInt(r.NFSIQuantity),
			formatFloat(r.NFSIValue),
			formatInt(r.QuantityVariance),
			formatFloat(r.ValueVariance),
			formatFloat(r.ValueVarianceTP),
			r.Fingerprint,
		})
	}

	return w.WriteCSV(filepath.Join("fin-rec-data", w.stampedName("finrecdata")), WriteOptions{
		Headers:   recordHeaders,
		Records:   rows,
		BOMPrefix: true,
	})
}

// WriteAggregates writes one variance report, routed to its report
// directory by tag.
func (w *CSVWriter) WriteAggregates(tag string, aggs []variance.Aggregate) error {
	path, ok := variancePaths[tag]
	if !ok {
		return fmt.Errorf("unknown variance report tag %q", tag)
	}

	rows := make([][]string, 0, len(aggs))
	for i := range aggs {
		a := &aggs[i]
		rows = append(rows, []string{
			a.VarianceType,
			formatDate(a.RecordDate),
			a.DepotID,
			a.DepotName,
			a.DepotCategory,
			formatInt(a.TotalPKRDQuantity),
			formatFloat(a.TotalPKRDValueTP),
			formatInt(a.TotalNFSIQuantity),
			formatFloat(a.TotalNFSIValue),
			formatInt(a.TotalQuantityVariance),
			formatFloat(a.TotalValueVarianceTP),
			a.MoveOrderShort,
			a.SKU,
			formatBool(a.IsGIT),
			formatInt(a.GITQuantity),
			formatFloat(a.GITValue),
		})
	}

	return w.WriteCSV(filepath.Join(path[0], w.stampedName(path[1])), WriteOptions{
		Headers:   varianceHeaders,
		Records:   rows,
		BOMPrefix: true,
	})
}

// WriteSummaries writes the combined category and grand-total summary
// report.
func (w *CSVWriter) WriteSummaries(summaries []variance.SummaryTotal) error {
	rows := make([][]string, 0, len(summaries))
	for i := range summaries {
		s := &summaries[i]
		rows = append(rows, []string{
			s.ReportType,
			s.Category,
			formatInt(s.PKRDQuantitySum),
			formatFloat(s.PKRDValueTPSum),
			formatInt(s.NFSIQuantitySum),
			formatFloat(s.NFSIValueSum),
			formatInt(s.QuantityVarianceSum),
			formatFloat(s.ValueVarianceSum),
			formatInt(s.GITQuantitySum),
			formatFloat(s.GITValueSum),
			formatFloat(s.PctOfSales),
			formatFloat(s.PTDExGIT),
			formatFloat(s.PctOfSalesExGIT),
		})
	}

	return w.WriteCSV(filepath.Join("report-totals", w.stampedName("fin-rec-report-totals")), WriteOptions{
		Headers:   summaryHeaders,
		Records:   rows,
		BOMPrefix: true,
	})
}

// WritePricing writes the parsed pricing extract.
func (w *CSVWriter) WritePricing(prices []reference.Pricing) error {
	rows := make([][]string, 0, len(prices))
	for i := range prices {
		p := &prices[i]
		rows = append(rows, []string{
			formatDate(p.PricingDate),
			p.SKU,
			p.MIN,
			p.PIN,
			p.Description,
			p.Room,
			p.RoomTwo,
			p.TradingCategory,
			formatFloat(p.PackWeight),
			formatInt(p.CaseSize),
			formatFloat(p.CaseWeight),
			formatFloat(p.RM),
			formatFloat(p.Pack),
			formatFloat(p.Lab),
			formatFloat(p.Dist),
			formatFloat(p.OH),
			formatFloat(p.DepotLoss),
			formatFloat(p.Total),
			formatFloat(p.RMCase),
			formatFloat(p.PackCase),
			formatFloat(p.LabCase),
			formatFloat(p.DistCase),
			formatFloat(p.OHCase),
			formatFloat(p.DepotLossCase),
			formatFloat(p.TotalCase),
		})
	}

	return w.WriteCSV(filepath.Join("pricing", w.stampedName("fin-rec-pricing")), WriteOptions{
		Headers:   pricingHeaders,
		Records:   rows,
		BOMPrefix: true,
	})
}
