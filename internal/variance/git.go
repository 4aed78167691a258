package variance

// classifyGIT labels an aggregate as goods-in-transit when exactly one side
// of the reconciliation is entirely zero. A GIT aggregate carries the whole
// variance as transit quantity and value; a non-GIT aggregate carries zero
// for both. The test is symmetric in which side is the zero one.
func classifyGIT(agg *Aggregate) {
	pkrdZero := agg.TotalPKRDQuantity == 0 && agg.TotalPKRDValueTP == 0
	nfsiZero := agg.TotalNFSIQuantity == 0 && agg.TotalNFSIValue == 0

	agg.IsGIT = pkrdZero != nfsiZero
	if agg.IsGIT {
		agg.GITQuantity = agg.TotalQuantityVariance
		agg.GITValue = agg.TotalValueVarianceTP
	} else {
		agg.GITQuantity = 0
		agg.GITValue = 0
	}
}
