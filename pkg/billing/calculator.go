package billing

// LineItem is one row of an invoice: a named quantity at a rate.
type LineItem struct {
	Name     string
	Quantity float64
	Rate     float64
}

// Amount returns the line total. Negative quantities and rates clamp to zero
// so that transient bad input from a live-editing form sums as zero instead of
// poisoning the subtotal.
func (li LineItem) Amount() float64 {
	qty := li.Quantity
	rate := li.Rate
	if qty < 0 {
		qty = 0
	}
	if rate < 0 {
		rate = 0
	}
	return qty * rate
}

// Totals is the monetary summary derived from a line-item list and a discount
// percentage. It is always recomputed from its inputs, never stored on its own.
type Totals struct {
	Subtotal       float64
	DiscountAmount float64
	Total          float64
}

// Compute derives Totals from items and a discount percentage.
//
// Accumulation happens in sequence order with no intermediate rounding;
// two-decimal rounding is the formatter's job at render time. The discount
// percentage is not range-checked here; out-of-range values propagate
// arithmetically and callers at the API boundary are expected to clamp to
// [0,100].
func Compute(items []LineItem, discountPercent float64) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Amount()
	}

	discountAmount := subtotal * discountPercent / 100
	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		Total:          subtotal - discountAmount,
	}
}

// ClampDiscount restricts a discount percentage to [0,100]. Applied at the
// request boundary, not inside Compute.
func ClampDiscount(percent float64) float64 {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
