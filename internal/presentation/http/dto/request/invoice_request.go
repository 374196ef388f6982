package request

// InvoiceItemRequest is one submitted line item.
type InvoiceItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity int     `json:"quantity"`
	Rate     float64 `json:"rate"`
}

// CreateInvoiceRequest is the POST /invoices body. The monetary summary
// fields are accepted for compatibility with form clients but the server
// always recomputes totals from items and discount.
type CreateInvoiceRequest struct {
	InvoiceNumber  string               `json:"invoice_number"`
	CustomerName   string               `json:"customer_name" binding:"required"`
	InvoiceDate    string               `json:"invoice_date"`
	Discount       float64              `json:"discount"`
	Status         string               `json:"status"`
	Items          []InvoiceItemRequest `json:"items" binding:"dive"`
	Subtotal       *float64             `json:"subtotal"`
	DiscountAmount *float64             `json:"discount_amount"`
	Total          *float64             `json:"total"`
}

// UpdateInvoiceRequest is the PUT /invoices/:id body. Absent fields are left
// untouched; items are immutable after creation.
type UpdateInvoiceRequest struct {
	CustomerName *string  `json:"customer_name"`
	InvoiceDate  *string  `json:"invoice_date"`
	Discount     *float64 `json:"discount"`
	Status       *string  `json:"status"`
}
