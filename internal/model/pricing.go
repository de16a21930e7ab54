package model

// Pricing constants, in integer rupees.
const (
	// FreeShippingThreshold is the subtotal above which shipping is free.
	// Strictly greater than: a subtotal of exactly 1999 still pays shipping.
	FreeShippingThreshold = 1999

	// FlatShippingFee applies whenever the order does not qualify for free
	// shipping.
	FlatShippingFee = 100

	// CODAdvanceAmount is the upfront payment requested for cash-on-delivery
	// orders before fulfilment proceeds.
	CODAdvanceAmount = 200
)

// Totals is the frozen pricing breakdown computed at order-creation time.
type Totals struct {
	Subtotal int `json:"subtotal"`
	Discount int `json:"discount"`
	Shipping int `json:"shipping"`
	Total    int `json:"total"`
}

// ComputeTotals derives order totals from frozen line items. Discount is
// reserved for future use and always zero.
func ComputeTotals(items []OrderItemRequest) Totals {
	var subtotal int
	for _, item := range items {
		subtotal += item.Price * item.Quantity
	}

	shipping := FlatShippingFee
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}

	return Totals{
		Subtotal: subtotal,
		Discount: 0,
		Shipping: shipping,
		Total:    subtotal + shipping,
	}
}
