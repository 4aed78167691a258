package variance

import "time"

// Report tags identify which variance report an aggregate belongs to. The
// tags are stable identifiers persisted to the warehouse, not display text.
const (
	TagFreshMoveOrder   = "fresh-moveorder"
	TagFreshSKU         = "fresh-sku"
	TagFrozenDepotDate  = "frozen-depot-date"
	TagFrozenDepotSKU   = "frozen-depot-sku"
	TagFrozenSKU        = "frozen-sku"
	TagNonNFSIMoveOrder = "non-nfsi-moveorder"

	// TagSummary is the category tag carried by grand-total summary rows.
	TagSummary = "SUMMARY"
)

// Dimension selects a grouping field for variance aggregation.
type Dimension int

const (
	DimDepotID Dimension = iota
	DimDepotName
	DimDepotCategory
	DimSKU
	DimMoveOrder
	DimRecordDate
)

// Aggregate is one grouped variance row. Dimension fields not part of the
// grouping stay at their zero value.
type Aggregate struct {
	VarianceType string

	RecordDate     time.Time
	DepotID        string
	DepotName      string
	DepotCategory  string
	MoveOrderShort string
	SKU            string

	TotalPKRDQuantity     int
	TotalPKRDValueTP      float64
	TotalNFSIQuantity     int
	TotalNFSIValue        float64
	TotalQuantityVariance int
	TotalValueVarianceTP  float64

	IsGIT       bool
	GITQuantity int
	GITValue    float64
}

// SummaryTotal is a category or grand-total rollup of one variance report.
type SummaryTotal struct {
	ReportType string
	Category   string

	PKRDQuantitySum     int
	PKRDValueTPSum      float64
	NFSIQuantitySum     int
	NFSIValueSum        float64
	QuantityVarianceSum int
	ValueVarianceSum    float64
	GITQuantitySum      int
	GITValueSum         float64

	PctOfSales      float64
	PTDExGIT        float64
	PctOfSalesExGIT float64
}
