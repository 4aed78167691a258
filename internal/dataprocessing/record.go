package dataprocessing

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"

	"finrec/internal/scrub"
)

// BuildRecord finishes construction of the canonical Record once joins are
// complete. Composite keys are recomputed from current field state so
// identities recovered by the joins flow into the record; measures are
// parsed with the lossy zero default.
func BuildRecord(logger *slog.Logger, r *SourceRow) Record {
	mo := r.MoveOrderShort()
	skuMoveOrder := CompositeKey(r.SKU, mo)
	skuAndOrder := CompositeKey(r.SKU, r.OrderNumber)

	var (
		pkrdQty     int
		pkrdValue   float64
		pkrdValueTP float64
		nfsiQty     int
		nfsiValue   float64
		unitPrice   float64
		casePrice   float64
	)

	if r.Type == SourcePKRD {
		unitPrice = r.UnitPrice
		casePrice = r.CasePrice
		pkrdQty = measureInt(logger, r.PKRDQuantityRaw)
		pkrdValue = measureFloat(logger, r.PKRDValueRaw)
		pkrdValueTP = scrub.Round(float64(pkrdQty)*casePrice, 5)
	} else {
		nfsiQty = measureInt(logger, r.NFSIQuantityRaw)
		nfsiValue = measureFloat(logger, r.NFSIValueRaw)
	}

	qtyVariance := pkrdQty + nfsiQty
	valueVariance := scrub.Round(pkrdValue+nfsiValue, 4)
	valueVarianceTP := scrub.Round(pkrdValueTP+nfsiValue, 4)

	return Record{
		RecordDate:     r.RecordDate,
		SourceType:     r.Type,
		SKU:            r.SKU,
		MoveOrderShort: mo,
		LotNumber:      r.LotNumber,
		DepotID:        r.DepotID,
		DepotName:      r.DepotName,
		DepotCategory:  r.DepotCategory,
		SKUMoveOrder:   skuMoveOrder,
		OrderID:        r.OrderNumber,
		SKUAndOrder:    skuAndOrder,

		PKRDUnitPrice: unitPrice,
		PKRDCasePrice: casePrice,
		PKRDQuantity:  pkrdQty,
		PKRDValue:     pkrdValue,
		PKRDValueTP:   pkrdValueTP,
		NFSIQuantity:  nfsiQty,
		NFSIValue:     nfsiValue,

		QuantityVariance: qtyVariance,
		ValueVariance:    valueVariance,
		ValueVarianceTP:  valueVarianceTP,

		Fingerprint: fingerprint(r, skuMoveOrder, skuAndOrder, pkrdQty, nfsiQty),
	}
}

// measureInt parses a quantity column. An absent value is a legitimate zero,
// not a parse failure.
func measureInt(logger *slog.Logger, raw string) int {
	if raw == "" {
		return 0
	}
	return scrub.IntOrZero(logger, raw)
}

func measureFloat(logger *slog.Logger, raw string) float64 {
	if raw == "" {
		return 0
	}
	return scrub.FloatOrZero(logger, raw)
}

// fingerprint derives the deterministic content hash used as the record's
// stable identity for downstream storage.
func fingerprint(r *SourceRow, skuMoveOrder, skuAndOrder string, pkrdQty, nfsiQty int) string {
	input := fmt.Sprintf("%s%s%s%s%s%s%d%d",
		r.RecordDate.Format("2006-01-02"),
		r.Type,
		skuMoveOrder,
		skuAndOrder,
		r.DepotID,
		r.LotNumber,
		pkrdQty,
		nfsiQty,
	)
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}
