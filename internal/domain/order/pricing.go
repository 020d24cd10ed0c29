package order

// ShippingPolicy: free above a subtotal threshold, a flat fee below it.
// Amounts are pence end-to-end; display formatting happens at the boundary.
type ShippingPolicy struct {
	FreeThresholdPence int64
	FlatFeePence       int64
}

func (p ShippingPolicy) FeePence(subtotalPence int64) int64 {
	if subtotalPence >= p.FreeThresholdPence {
		return 0
	}
	return p.FlatFeePence
}
