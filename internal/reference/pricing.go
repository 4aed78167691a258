package reference

import (
	"log/slog"
	"time"

	"finrec/internal/config"
	"finrec/internal/ingest"
	"finrec/internal/scrub"
)

// Pricing is one transfer pricing record: per-unit and per-case cost
// components for a SKU. It is both the source of the pricing decode table
// and an exported result set in its own right.
type Pricing struct {
	PricingDate     time.Time
	SKU             string
	MIN             string
	PIN             string
	Description     string
	Room            string
	RoomTwo         string
	TradingCategory string
	PackWeight      float64
	CaseSize        int
	CaseWeight      float64
	RM              float64
	Pack            float64
	Lab             float64
	Dist            float64
	OH              float64
	DepotLoss       float64
	Total           float64
	RMCase          float64
	PackCase        float64
	LabCase         float64
	DistCase        float64
	OHCase          float64
	DepotLossCase   float64
	TotalCase       float64
}

// PricingFromRow parses one pricing row. Text fields are scrubbed of quotes
// and trailing whitespace; numeric fields default to zero with a diagnostic
// when unparseable. Extracts rarely carry a pricing date, so defaultDate
// (normally the run's effective date) fills the gap.
func PricingFromRow(logger *slog.Logger, m config.PricingMapping, row ingest.Row, defaultDate time.Time) Pricing {
	return Pricing{
		PricingDate:     scrub.DateOrDefault(logger, row[m.Date], defaultDate),
		SKU:             row[m.SKU],
		MIN:             row[m.MIN],
		PIN:             row[m.PIN],
		Description:     scrub.Desc(row[m.Description]),
		Room:            scrub.Desc(row[m.Room]),
		RoomTwo:         scrub.Desc(row[m.RoomTwo]),
		TradingCategory: scrub.Desc(row[m.TradingCategory]),
		PackWeight:      scrub.FloatOrZero(logger, row[m.PackWeight]),
		CaseSize:        scrub.IntOrZero(logger, row[m.CaseSize]),
		CaseWeight:      scrub.FloatOrZero(logger, row[m.CaseWeight]),
		RM:              scrub.FloatOrZero(logger, row[m.RM]),
		Pack:            scrub.FloatOrZero(logger, row[m.Pack]),
		Lab:             scrub.FloatOrZero(logger, row[m.Lab]),
		Dist:            scrub.FloatOrZero(logger, row[m.Dist]),
		OH:              scrub.FloatOrZero(logger, row[m.OH]),
		DepotLoss:       scrub.FloatOrZero(logger, row[m.DepotLoss]),
		Total:           scrub.FloatOrZero(logger, row[m.Total]),
		RMCase:          scrub.FloatOrZero(logger, row[m.RMCase]),
		PackCase:        scrub.FloatOrZero(logger, row[m.PackCase]),
		LabCase:         scrub.FloatOrZero(logger, row[m.LabCase]),
		DistCase:        scrub.FloatOrZero(logger, row[m.DistCase]),
		OHCase:          scrub.FloatOrZero(logger, row[m.OHCase]),
		DepotLossCase:   scrub.FloatOrZero(logger, row[m.DepotLossCase]),
		TotalCase:       scrub.FloatOrZero(logger, row[m.TotalCase]),
	}
}

// PriceInfo is the slice of a pricing record the ledger enrichment needs.
type PriceInfo struct {
	UnitPrice float64
	CasePrice float64
}

// PricingTable resolves SKUs to transfer prices. Built once, read-only
// afterwards.
type PricingTable struct {
	prices map[string]PriceInfo
}

// NewPricingTable builds the decode table from parsed pricing records.
func NewPricingTable(records []Pricing) *PricingTable {
	prices := make(map[string]PriceInfo, len(records))
	for _, rec := range records {
		if rec.SKU == "" {
			continue
		}
		prices[rec.SKU] = PriceInfo{
			UnitPrice: rec.Total,
			CasePrice: rec.TotalCase,
		}
	}
	return &PricingTable{prices: prices}
}

// Lookup returns the transfer prices for a SKU. The second return is false
// on a miss.
func (t *PricingTable) Lookup(sku string) (PriceInfo, bool) {
	info, ok := t.prices[sku]
	return info, ok
}

// Len returns the number of priced SKUs.
func (t *PricingTable) Len() int {
	return len(t.prices)
}
