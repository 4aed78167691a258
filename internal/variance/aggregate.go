package variance

import (
	"sort"
	"strings"

	"finrec/internal/dataprocessing"
)

// Aggregator groups canonical records into one variance report. Target names
// the receipt source being reconciled against the ledger; Dimensions are the
// grouping fields; Tag labels the resulting aggregates.
type Aggregator struct {
	Target     dataprocessing.SourceType
	Tag        string
	Dimensions []Dimension
}

// Reports returns the six report aggregators in a fixed order.
func Reports() []Aggregator {
	return []Aggregator{
		{
			Target:     dataprocessing.SourceFrozen,
			Tag:        TagFrozenDepotSKU,
			Dimensions: []Dimension{DimDepotID, DimDepotCategory, DimDepotName, DimSKU},
		},
		{
			Target:     dataprocessing.SourceFresh,
			Tag:        TagFreshSKU,
			Dimensions: []Dimension{DimDepotCategory, DimSKU},
		},
		{
			Target:     dataprocessing.SourceFrozen,
			Tag:        TagFrozenSKU,
			Dimensions: []Dimension{DimDepotCategory, DimSKU},
		},
		{
			Target:     dataprocessing.SourceFresh,
			Tag:        TagFreshMoveOrder,
			Dimensions: []Dimension{DimDepotCategory, DimMoveOrder},
		},
		{
			Target:     dataprocessing.SourceNonNFSI,
			Tag:        TagNonNFSIMoveOrder,
			Dimensions: []Dimension{DimDepotCategory, DimMoveOrder},
		},
		{
			Target:     dataprocessing.SourceFrozen,
			Tag:        TagFrozenDepotDate,
			Dimensions: []Dimension{DimDepotCategory, DimDepotID, DimDepotName, DimRecordDate},
		},
	}
}

// Aggregate filters records to the ledger plus the target source within the
// target's depot category, groups them by the configured dimensions and sums
// the six measures. Output order is deterministic: ascending by group key.
func (a Aggregator) Aggregate(records []dataprocessing.Record) []Aggregate {
	category := a.Target.String()

	groups := make(map[string]*Aggregate)
	keys := make([]string, 0)

	for i := range records {
		rec := &records[i]
		if rec.SourceType != dataprocessing.SourcePKRD && rec.SourceType != a.Target {
			continue
		}
		if rec.DepotCategory != category {
			continue
		}

		key := a.groupKey(rec)
		agg, ok := groups[key]
		if !ok {
			agg = a.newAggregate(rec)
			groups[key] = agg
			keys = append(keys, key)
		}

		agg.TotalPKRDQuantity += rec.PKRDQuantity
		agg.TotalPKRDValueTP += rec.PKRDValueTP
		agg.TotalNFSIQuantity += rec.NFSIQuantity
		agg.TotalNFSIValue += rec.NFSIValue
		agg.TotalQuantityVariance += rec.QuantityVariance
		agg.TotalValueVarianceTP += rec.ValueVarianceTP
	}

	sort.Strings(keys)

	out := make([]Aggregate, 0, len(keys))
	for _, key := range keys {
		agg := groups[key]
		classifyGIT(agg)
		out = append(out, *agg)
	}
	return out
}

func (a Aggregator) groupKey(rec *dataprocessing.Record) string {
	parts := make([]string, 0, len(a.Dimensions))
	for _, dim := range a.Dimensions {
		parts = append(parts, dimensionValue(dim, rec))
	}
	return strings.Join(parts, "\x1f")
}

// newAggregate seeds an aggregate with the grouped dimension values only;
// non-grouped dimensions stay zero so every row in the group is represented
// identically.
func (a Aggregator) newAggregate(rec *dataprocessing.Record) *Aggregate {
	agg := &Aggregate{VarianceType: a.Tag}
	for _, dim := range a.Dimensions {
		switch dim {
		case DimDepotID:
			agg.DepotID = rec.DepotID
		case DimDepotName:
			agg.DepotName = rec.DepotName
		case DimDepotCategory:
			agg.DepotCategory = rec.DepotCategory
		case DimSKU:
			agg.SKU = rec.SKU
		case DimMoveOrder:
			agg.MoveOrderShort = rec.MoveOrderShort
		case DimRecordDate:
			agg.RecordDate = rec.RecordDate
		}
	}
	return agg
}

func dimensionValue(dim Dimension, rec *dataprocessing.Record) string {
	switch dim {
	case DimDepotID:
		return rec.DepotID
	case DimDepotName:
		return rec.DepotName
	case DimDepotCategory:
		return rec.DepotCategory
	case DimSKU:
		return rec.SKU
	case DimMoveOrder:
		return rec.MoveOrderShort
	case DimRecordDate:
		return rec.RecordDate.Format("2006-01-02")
	default:
		return ""
	}
}
