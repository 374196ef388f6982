package pdf

import (
	"math"
	"time"
)

// DefaultCustomerName labels an invoice whose customer name is missing.
const DefaultCustomerName = "Customer"

// sanitize normalizes a Document into a fully-defaulted value the layout code
// can treat as always valid. It runs exactly once, at the entry of Render, so
// no nil/NaN checks leak into the drawing functions.
func sanitize(doc Document) Document {
	if doc.CustomerName == "" {
		doc.CustomerName = DefaultCustomerName
	}
	if doc.InvoiceDate.IsZero() {
		doc.InvoiceDate = time.Now()
	}
	if doc.DueDate.IsZero() {
		doc.DueDate = doc.InvoiceDate.AddDate(0, 0, 30)
	}

	if doc.Items == nil {
		doc.Items = []Item{}
	}
	for i := range doc.Items {
		if doc.Items[i].Name == "" {
			doc.Items[i].Name = "Item"
		}
		doc.Items[i].Quantity = finiteOrZero(doc.Items[i].Quantity)
		doc.Items[i].Rate = finiteOrZero(doc.Items[i].Rate)
		doc.Items[i].Amount = finiteOrZero(doc.Items[i].Amount)
	}

	doc.DiscountPercent = finiteOrZero(doc.DiscountPercent)
	doc.Subtotal = finiteOrZero(doc.Subtotal)
	doc.DiscountAmount = finiteOrZero(doc.DiscountAmount)
	doc.Total = finiteOrZero(doc.Total)

	return doc
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
