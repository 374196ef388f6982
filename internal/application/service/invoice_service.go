package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invoicely/invoicely-api/internal/domain/entity"
	"github.com/invoicely/invoicely-api/internal/domain/enum"
	"github.com/invoicely/invoicely-api/internal/domain/repository"
	"github.com/invoicely/invoicely-api/pkg/apperror"
	"github.com/invoicely/invoicely-api/pkg/billing"
	"github.com/invoicely/invoicely-api/pkg/export"
	"github.com/invoicely/invoicely-api/pkg/pagination"
	"github.com/invoicely/invoicely-api/pkg/pdf"
)

// InvoiceService handles invoice-related operations
type InvoiceService struct {
	invoiceRepo repository.InvoiceRepository
	numbers     *NumberService
	renderer    *pdf.Renderer
	dueDays     int
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	numbers *NumberService,
	renderer *pdf.Renderer,
	dueDays int,
) *InvoiceService {
	if dueDays <= 0 {
		dueDays = 30
	}
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		numbers:     numbers,
		renderer:    renderer,
		dueDays:     dueDays,
	}
}

// ItemInput represents one line item in a create request
type ItemInput struct {
	Name     string
	Quantity int
	Rate     float64
}

// CreateInvoiceInput represents the create invoice input
type CreateInvoiceInput struct {
	InvoiceNumber   string // empty means "allocate one"
	CustomerName    string
	InvoiceDate     time.Time
	DiscountPercent float64
	Status          string
	Items           []ItemInput
}

// CreateInvoice persists a new invoice. Totals are always recomputed from the
// submitted items and discount; totals sent by the client are ignored. When no
// invoice number is supplied the sequential allocator mints one before
// anything is persisted.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	number := input.InvoiceNumber
	if number == "" {
		allocated, err := s.numbers.Allocate(ctx)
		if err != nil {
			return nil, err
		}
		number = allocated
	}

	status := enum.InvoiceStatusDraft
	if input.Status != "" {
		parsed, err := enum.ParseInvoiceStatus(input.Status)
		if err != nil {
			return nil, apperror.NewBadRequestError(err.Error())
		}
		status = parsed
	}

	invoiceDate := input.InvoiceDate
	if invoiceDate.IsZero() {
		invoiceDate = time.Now()
	}

	discount := billing.ClampDiscount(input.DiscountPercent)
	items := make([]billing.LineItem, len(input.Items))
	for i, item := range input.Items {
		items[i] = billing.LineItem{
			Name:     item.Name,
			Quantity: float64(item.Quantity),
			Rate:     item.Rate,
		}
	}
	totals := billing.Compute(items, discount)

	// The stored total is derived from the rounded decimals, not rounded
	// independently, so subtotal - discount_amount == total holds on the
	// persisted row to the cent.
	subtotal := decimal.NewFromFloat(totals.Subtotal).Round(2)
	discountAmount := decimal.NewFromFloat(totals.DiscountAmount).Round(2)

	invoice := &entity.Invoice{
		InvoiceNumber:   number,
		CustomerName:    input.CustomerName,
		InvoiceDate:     invoiceDate,
		DueDate:         invoiceDate.AddDate(0, 0, s.dueDays),
		Subtotal:        subtotal,
		DiscountPercent: decimal.NewFromFloat(discount).Round(2),
		DiscountAmount:  discountAmount,
		Total:           subtotal.Sub(discountAmount),
		Status:          status,
	}
	for i, item := range input.Items {
		qty := item.Quantity
		if qty < 0 {
			qty = 0
		}
		invoice.Items = append(invoice.Items, entity.InvoiceItem{
			Position: i,
			Name:     item.Name,
			Quantity: qty,
			Rate:     decimal.NewFromFloat(items[i].Rate).Round(2),
			Amount:   decimal.NewFromFloat(items[i].Amount()).Round(2),
		})
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	return invoice, nil
}

// GetInvoice retrieves an invoice by ID
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// GetInvoiceByNumber retrieves an invoice by its invoice number
func (s *InvoiceService) GetInvoiceByNumber(ctx context.Context, number string) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoices lists invoices with filtering, sorting and pagination
func (s *InvoiceService) ListInvoices(ctx context.Context, params *repository.InvoiceFilterParams) (*pagination.Result[entity.Invoice], error) {
	invoices, total, err := s.invoiceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.New(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewResult(invoices, pag), nil
}

// UpdateInvoiceInput represents a partial update. Nil fields are left alone.
// Items are immutable after creation and cannot be updated.
type UpdateInvoiceInput struct {
	CustomerName    *string
	InvoiceDate     *time.Time
	DiscountPercent *float64
	Status          *string
}

// UpdateInvoice applies a partial update to an invoice header. Changing the
// invoice date shifts the due date; changing the discount recomputes totals
// from the stored items.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, id uuid.UUID, input *UpdateInvoiceInput) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	// A status-only update takes the targeted path instead of rewriting the
	// whole header row.
	if input.Status != nil && input.CustomerName == nil &&
		input.InvoiceDate == nil && input.DiscountPercent == nil {
		status, err := enum.ParseInvoiceStatus(*input.Status)
		if err != nil {
			return nil, apperror.NewBadRequestError(err.Error())
		}
		if err := s.invoiceRepo.UpdateStatus(ctx, id, status); err != nil {
			return nil, err
		}
		invoice.Status = status
		return invoice, nil
	}

	if input.CustomerName != nil {
		invoice.CustomerName = *input.CustomerName
	}
	if input.InvoiceDate != nil {
		invoice.InvoiceDate = *input.InvoiceDate
		invoice.DueDate = input.InvoiceDate.AddDate(0, 0, s.dueDays)
	}
	if input.Status != nil {
		status, err := enum.ParseInvoiceStatus(*input.Status)
		if err != nil {
			return nil, apperror.NewBadRequestError(err.Error())
		}
		invoice.Status = status
	}
	if input.DiscountPercent != nil {
		discount := billing.ClampDiscount(*input.DiscountPercent)
		items := make([]billing.LineItem, len(invoice.Items))
		for i, item := range invoice.Items {
			items[i] = billing.LineItem{
				Name:     item.Name,
				Quantity: float64(item.Quantity),
				Rate:     item.Rate.InexactFloat64(),
			}
		}
		totals := billing.Compute(items, discount)
		subtotal := decimal.NewFromFloat(totals.Subtotal).Round(2)
		discountAmount := decimal.NewFromFloat(totals.DiscountAmount).Round(2)
		invoice.DiscountPercent = decimal.NewFromFloat(discount).Round(2)
		invoice.Subtotal = subtotal
		invoice.DiscountAmount = discountAmount
		invoice.Total = subtotal.Sub(discountAmount)
	}

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// DeleteInvoice removes an invoice and, through the cascade, its items
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}
	return s.invoiceRepo.Delete(ctx, id)
}

// GetStats returns aggregate counts by status, total revenue and the trailing
// twelve-month revenue series
func (s *InvoiceService) GetStats(ctx context.Context) (*repository.InvoiceStats, error) {
	return s.invoiceRepo.Stats(ctx)
}

// ExportXLSX exports the filtered invoice list as an XLSX workbook. The
// export ignores pagination and writes every matching row.
func (s *InvoiceService) ExportXLSX(ctx context.Context, params *repository.InvoiceFilterParams) ([]byte, error) {
	params.Pagination = &pagination.Params{Page: 1, PerPage: 100}

	var rows []export.Row
	for {
		invoices, total, err := s.invoiceRepo.List(ctx, params)
		if err != nil {
			return nil, err
		}
		for _, inv := range invoices {
			rows = append(rows, export.Row{
				InvoiceNumber:  inv.InvoiceNumber,
				CustomerName:   inv.CustomerName,
				InvoiceDate:    inv.InvoiceDate,
				DueDate:        inv.DueDate,
				Subtotal:       inv.Subtotal.InexactFloat64(),
				DiscountAmount: inv.DiscountAmount.InexactFloat64(),
				Total:          inv.Total.InexactFloat64(),
				Status:         inv.Status.String(),
			})
		}
		if int64(len(rows)) >= total || len(invoices) == 0 {
			break
		}
		params.Pagination.Page++
	}

	return export.InvoicesXLSX(rows)
}

// RenderPDF renders the stored invoice as a PDF and returns the bytes together
// with the download filename.
func (s *InvoiceService) RenderPDF(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if invoice == nil {
		return nil, "", apperror.NewNotFoundError("Invoice")
	}

	doc := pdf.Document{
		InvoiceNumber:   invoice.InvoiceNumber,
		CustomerName:    invoice.CustomerName,
		InvoiceDate:     invoice.InvoiceDate,
		DueDate:         invoice.DueDate,
		DiscountPercent: invoice.DiscountPercent.InexactFloat64(),
		Subtotal:        invoice.Subtotal.InexactFloat64(),
		DiscountAmount:  invoice.DiscountAmount.InexactFloat64(),
		Total:           invoice.Total.InexactFloat64(),
	}
	for _, item := range invoice.Items {
		doc.Items = append(doc.Items, pdf.Item{
			Name:     item.Name,
			Quantity: float64(item.Quantity),
			Rate:     item.Rate.InexactFloat64(),
			Amount:   item.Amount.InexactFloat64(),
		})
	}

	data, err := s.renderer.Render(doc)
	if err != nil {
		return nil, "", apperror.NewRenderError(err.Error())
	}

	return data, invoice.InvoiceNumber + ".pdf", nil
}
