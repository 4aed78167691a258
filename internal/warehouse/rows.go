package warehouse

import (
	"time"

	"finrec/internal/dataprocessing"
	"finrec/internal/reference"
	"finrec/internal/variance"
)

func dateOrNil(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format("2006-01-02")
}

// recordRow merges one canonical record with the envelope fields.
func recordRow(envelope map[string]any, r *dataprocessing.Record) map[string]any {
	row := make(map[string]any, len(envelope)+22)
	for k, v := range envelope {
		row[k] = v
	}
	row["record_date"] = r.RecordDate.Format("2006-01-02")
	row["source_data_type"] = r.SourceType.String()
	row["sku"] = r.SKU
	row["moveorder_short"] = r.MoveOrderShort
	row["lot_number"] = r.LotNumber
	row["depot_id"] = r.DepotID
	row["depot_name"] = r.DepotName
	row["depot_category"] = r.DepotCategory
	row["sku_moveorder"] = r.SKUMoveOrder
	row["order_id"] = r.OrderID
	row["sku_and_order"] = r.SKUAndOrder
	row["pkrd_unit_price"] = r.PKRDUnitPrice
	row["pkrd_case_price"] = r.PKRDCasePrice
	row["pkrd_quantity"] = r.PKRDQuantity
	row["pkrd_value"] = r.PKRDValue
	row["pkrd_value_tp"] = r.PKRDValueTP
	row["nfsi_quantity"] = r.NFSIQuantity
	row["nfsi_value"] = r.NFSIValue
	row["quantity_variance"] = r.QuantityVariance
	row["value_variance"] = r.ValueVariance
	row["value_variance_tp"] = r.ValueVarianceTP
	row["fingerprint"] = r.Fingerprint
	return row
}

// aggregateRow merges one variance aggregate with the envelope fields.
func aggregateRow(envelope map[string]any, a *variance.Aggregate) map[string]any {
	row := make(map[string]any, len(envelope)+16)
	for k, v := range envelope {
		row[k] = v
	}
	row["variance_type"] = a.VarianceType
	row["record_date"] = dateOrNil(a.RecordDate)
	row["depot_id"] = a.DepotID
	row["depot_name"] = a.DepotName
	row["depot_category"] = a.DepotCategory
	row["total_pkrd_quantity"] = a.TotalPKRDQuantity
	row["total_pkrd_value_tp"] = a.TotalPKRDValueTP
	row["total_nfsi_quantity"] = a.TotalNFSIQuantity
	row["total_nfsi_value"] = a.TotalNFSIValue
	row["total_quantity_variance"] = a.TotalQuantityVariance
	row["total_value_variance_tp"] = a.TotalValueVarianceTP
	row["moveorder_short"] = a.MoveOrderShort
	row["sku"] = a.SKU
	row["is_git"] = a.IsGIT
	row["git_quantity"] = a.GITQuantity
	row["git_value"] = a.GITValue
	return row
}

// summaryRow merges one summary total with the envelope fields.
func summaryRow(envelope map[string]any, s *variance.SummaryTotal) map[string]any {
	row := make(map[string]any, len(envelope)+13)
	for k, v := range envelope {
		row[k] = v
	}
	row["report_type"] = s.ReportType
	row["category"] = s.Category
	row["pkrd_quantity_sum"] = s.PKRDQuantitySum
	row["pkrd_value_tp_sum"] = s.PKRDValueTPSum
	row["nfsi_quantity_sum"] = s.NFSIQuantitySum
	row["nfsi_value_sum"] = s.NFSIValueSum
	row["quantity_variance_sum"] = s.QuantityVarianceSum
	row["value_variance_sum"] = s.ValueVarianceSum
	row["git_quantity_sum"] = s.GITQuantitySum
	row["git_value_sum"] = s.GITValueSum
	row["pct_of_sales"] = s.PctOfSales
	row["ptd_ex_git"] = s.PTDExGIT
	row["pct_of_sales_ex_git"] = s.PctOfSalesExGIT
	return row
}

// pricingRow merges one pricing record with the envelope fields.
func pricingRow(envelope map[string]any, p *reference.Pricing) map[string]any {
	row := make(map[string]any, len(envelope)+25)
	for k, v := range envelope {
		row[k] = v
	}
	row["pricing_date"] = p.PricingDate.Format("2006-01-02")
	row["sku"] = p.SKU
	row["min"] = p.MIN
	row["pin"] = p.PIN
	row["long_desc"] = p.Description
	row["room"] = p.Room
	row["room_two"] = p.RoomTwo
	row["trading_category"] = p.TradingCategory
	row["pack_weight"] = p.PackWeight
	row["case_size"] = p.CaseSize
	row["case_weight"] = p.CaseWeight
	row["rm"] = p.RM
	row["pack"] = p.Pack
	row["lab"] = p.Lab
	row["dist"] = p.Dist
	row["oh"] = p.OH
	row["depot_loss"] = p.DepotLoss
	row["total"] = p.Total
	row["rm_case"] = p.RMCase
	row["pack_case"] = p.PackCase
	row["lab_case"] = p.LabCase
	row["dist_case"] = p.DistCase
	row["oh_case"] = p.OHCase
	row["depot_loss_case"] = p.DepotLossCase
	row["total_case"] = p.TotalCase
	return row
}
