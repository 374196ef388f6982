package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/invoicely/invoicely-api/internal/domain/entity"
	"github.com/invoicely/invoicely-api/internal/domain/enum"
	"github.com/invoicely/invoicely-api/pkg/pagination"
)

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	// Create persists the header and its items atomically: either both land
	// or neither does.
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetByNumber(ctx context.Context, number string) (*entity.Invoice, error)
	List(ctx context.Context, params *InvoiceFilterParams) ([]entity.Invoice, int64, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) error
	// Delete removes the header; items cascade.
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*InvoiceStats, error)
}

// InvoiceFilterParams contains filtering parameters for invoice queries
type InvoiceFilterParams struct {
	Pagination *pagination.Params
	Search     string
	Status     *enum.InvoiceStatus
	SortBy     string
	SortOrder  string
}

// InvoiceStats aggregates counts by status, total revenue and a trailing
// twelve-month revenue series.
type InvoiceStats struct {
	TotalInvoices  int64            `json:"total_invoices"`
	CountsByStatus map[string]int64 `json:"counts_by_status"`
	TotalRevenue   float64          `json:"total_revenue"`
	MonthlyRevenue []MonthlyRevenue `json:"monthly_revenue"`
}

// MonthlyRevenue is one point of the trailing revenue series.
type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// SequenceRepository owns the durable invoice-number counter. All mutations
// happen under a single-writer discipline at the storage layer.
type SequenceRepository interface {
	// Next returns the current counter value and durably advances it by one,
	// atomically. Concurrent callers never observe the same value.
	Next(ctx context.Context) (int64, error)
	// Peek returns the value Next would hand out, without mutating state.
	Peek(ctx context.Context) (int64, error)
	// Reset sets the counter back to 1.
	Reset(ctx context.Context) error
}
