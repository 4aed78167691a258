package dataprocessing

import (
	"log/slog"
	"strconv"

	"finrec/internal/config"
	"finrec/internal/ingest"
	"finrec/internal/reference"
	"finrec/internal/scrub"
)

// skuOffset shifts the receipt feeds' shorter internal item numbers into the
// ledger's SKU namespace.
const skuOffset = 60_000_000

// Normalize maps a raw source row into its pre-join SourceRow. Same row and
// type always yield the same output; the only side effect is diagnostics
// for unparseable dates.
func Normalize(logger *slog.Logger, st SourceType, m config.ColumnMapping, row ingest.Row) *SourceRow {
	r := &SourceRow{
		Type:         st,
		RecordDate:   scrub.DateOrDefault(logger, row[m.Date], scrub.MaxDate),
		SKU:          normalizeSKU(logger, st, row[m.SKU]),
		MoveOrderRaw: row[m.MoveOrder],
		DepotID:      normalizeDepotID(st, row[m.Depot]),
	}

	if st == SourcePKRD {
		r.LotNumber = row[m.Lot]
	}
	if m.Order != "" {
		r.OrderNumber = row[m.Order]
	}

	r.PKRDQuantityRaw = row[m.PKRDQuantity]
	r.PKRDValueRaw = row[m.PKRDValue]
	r.NFSIQuantityRaw = row[m.NFSIQuantity]
	r.NFSIValueRaw = row[m.NFSIValue]

	return r
}

// normalizeSKU shifts receipt-feed item numbers into the ledger namespace.
// Fresh and Frozen always use the short internal scheme; Non-NFSI mixes both
// schemes, so only short identifiers (2-7 characters) are shifted. Ledger
// and sales SKUs pass through unchanged.
func normalizeSKU(logger *slog.Logger, st SourceType, raw string) string {
	switch st {
	case SourceFresh, SourceFrozen:
		if raw == "" {
			return raw
		}
	case SourceNonNFSI:
		if len(raw) <= 1 || len(raw) >= 8 {
			return raw
		}
	default:
		return raw
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		logger.Warn("non-numeric item id, passing through without offset",
			slog.String("raw", raw),
			slog.String("source", st.String()))
		return raw
	}
	return strconv.Itoa(n + skuOffset)
}

// normalizeDepotID strips the depot-type prefix the two NFSI receipt feeds
// carry, keeping the last three characters.
func normalizeDepotID(st SourceType, raw string) string {
	if (st == SourceFresh || st == SourceFrozen) && len(raw) > 3 {
		return raw[len(raw)-3:]
	}
	return raw
}

// EnrichDepot attaches depot name and category from the decode table.
// A lookup miss leaves the fields empty.
func EnrichDepot(r *SourceRow, depots *reference.DepotTable) {
	if info, ok := depots.Lookup(r.DepotID); ok {
		r.DepotName = info.Name
		r.DepotCategory = info.Category
	}
}

// EnrichPricing attaches transfer prices to ledger rows. Non-ledger rows and
// lookup misses are a no-op.
func EnrichPricing(r *SourceRow, prices *reference.PricingTable) {
	if r.Type != SourcePKRD {
		return
	}
	if info, ok := prices.Lookup(r.SKU); ok {
		r.UnitPrice = info.UnitPrice
		r.CasePrice = info.CasePrice
	}
}
