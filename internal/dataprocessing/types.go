package dataprocessing

import (
	"strings"
	"time"
)

// SourceType identifies which feed produced a row.
type SourceType int

const (
	// SourcePKRD is the warehouse movement ledger, the authoritative side
	// of reconciliation.
	SourcePKRD SourceType = iota
	// SourceFresh is the NFSI Fresh receipt feed.
	SourceFresh
	// SourceFrozen is the NFSI Frozen receipt feed.
	SourceFrozen
	// SourceNonNFSI is the non-NFSI invoicing feed.
	SourceNonNFSI
	// SourceSales is the sales order extract. Sales rows never become
	// canonical records; they exist to recover identity fields via joins.
	SourceSales
)

// String returns the display label used in records, depot categories and
// warehouse tables.
func (s SourceType) String() string {
	switch s {
	case SourcePKRD:
		return "PKRD"
	case SourceFresh:
		return "NFSI Fresh"
	case SourceFrozen:
		return "NFSI Frozen"
	case SourceNonNFSI:
		return "Non-NFSI"
	case SourceSales:
		return "SALES"
	default:
		return "unknown"
	}
}

const (
	// MissingKeyPart replaces an absent component in a composite key so
	// keys are always non-empty and join-safe.
	MissingKeyPart = "MISSING"
	// MissingMoveOrder is the sentinel for rows without a move order.
	MissingMoveOrder = "MISSING_MO"
)

// CompositeKey joins two identifiers with '_', substituting the MISSING
// sentinel for absent components. The result never contains an empty
// segment.
func CompositeKey(prefix, suffix string) string {
	if prefix == "" {
		prefix = MissingKeyPart
	}
	if suffix == "" {
		suffix = MissingKeyPart
	}
	return prefix + "_" + suffix
}

// SourceRow is a normalized row between normalization and record building.
// Joins may overwrite MoveOrderRaw and OrderNumber; the derived accessors
// recompute their values from current field state so post-join records pick
// up recovered identities.
type SourceRow struct {
	Type       SourceType
	RecordDate time.Time

	SKU          string
	MoveOrderRaw string
	LotNumber    string
	DepotID      string
	OrderNumber  string

	// Reference enrichment; empty on a lookup miss.
	DepotName     string
	DepotCategory string
	UnitPrice     float64
	CasePrice     float64

	// Measure columns as they arrived; parsed by BuildRecord.
	PKRDQuantityRaw string
	PKRDValueRaw    string
	NFSIQuantityRaw string
	NFSIValueRaw    string

	JoinMatch bool
}

// MoveOrderShort derives the primary move order segment: the text before
// the first '/' for ledger and sales rows, the raw value otherwise, and the
// MISSING_MO sentinel when absent.
func (r *SourceRow) MoveOrderShort() string {
	if r.MoveOrderRaw == "" {
		return MissingMoveOrder
	}
	if r.Type == SourcePKRD || r.Type == SourceSales {
		if i := strings.IndexByte(r.MoveOrderRaw, '/'); i >= 0 {
			return r.MoveOrderRaw[:i]
		}
	}
	return r.MoveOrderRaw
}

// SKUMoveOrder is the sku/moveorder composite join key.
func (r *SourceRow) SKUMoveOrder() string {
	return CompositeKey(r.SKU, r.MoveOrderShort())
}

// SKUAndOrder is the sku/order-number composite join key.
func (r *SourceRow) SKUAndOrder() string {
	return CompositeKey(r.SKU, r.OrderNumber)
}

// Record is the canonical reconciled unit of record. Records are built once
// per input row after joins complete and are immutable afterwards.
type Record struct {
	RecordDate     time.Time
	SourceType     SourceType
	SKU            string
	MoveOrderShort string
	LotNumber      string
	DepotID        string
	DepotName      string
	DepotCategory  string
	SKUMoveOrder   string
	OrderID        string
	SKUAndOrder    string

	PKRDUnitPrice float64
	PKRDCasePrice float64
	PKRDQuantity  int
	PKRDValue     float64
	PKRDValueTP   float64
	NFSIQuantity  int
	NFSIValue     float64

	QuantityVariance int
	ValueVariance    float64
	ValueVarianceTP  float64

	Fingerprint string
}
