package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/invoicely/invoicely-api/internal/domain/entity"
	"github.com/invoicely/invoicely-api/internal/domain/enum"
	"github.com/invoicely/invoicely-api/internal/domain/repository"
	"github.com/invoicely/invoicely-api/pkg/apperror"
)

// fakeSequenceRepo is an in-memory stand-in for the durable counter.
type fakeSequenceRepo struct {
	next    int64
	failing bool
}

func (f *fakeSequenceRepo) Next(ctx context.Context) (int64, error) {
	if f.failing {
		return 0, apperror.ErrStorageUnavailable
	}
	n := f.next
	f.next++
	return n, nil
}

func (f *fakeSequenceRepo) Peek(ctx context.Context) (int64, error) {
	if f.failing {
		return 0, apperror.ErrStorageUnavailable
	}
	return f.next, nil
}

func (f *fakeSequenceRepo) Reset(ctx context.Context) error {
	if f.failing {
		return apperror.ErrStorageUnavailable
	}
	f.next = 1
	return nil
}

// fakeInvoiceRepo keeps invoices in memory and enforces the unique-number
// backstop the way the real store does.
type fakeInvoiceRepo struct {
	invoices          map[uuid.UUID]*entity.Invoice
	updateStatusCalls int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[uuid.UUID]*entity.Invoice)}
}

func (f *fakeInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	for _, existing := range f.invoices {
		if existing.InvoiceNumber == invoice.InvoiceNumber {
			return apperror.NewDuplicateNumberError(invoice.InvoiceNumber)
		}
	}
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}
	for i := range invoice.Items {
		invoice.Items[i].InvoiceID = invoice.ID
	}
	stored := *invoice
	f.invoices[invoice.ID] = &stored
	return nil
}

func (f *fakeInvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, ok := f.invoices[id]
	if !ok {
		return nil, nil
	}
	copied := *invoice
	return &copied, nil
}

func (f *fakeInvoiceRepo) GetByNumber(ctx context.Context, number string) (*entity.Invoice, error) {
	for _, invoice := range f.invoices {
		if invoice.InvoiceNumber == number {
			copied := *invoice
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeInvoiceRepo) List(ctx context.Context, params *repository.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	var out []entity.Invoice
	for _, invoice := range f.invoices {
		if params.Status != nil && invoice.Status != *params.Status {
			continue
		}
		out = append(out, *invoice)
	}
	return out, int64(len(out)), nil
}

func (f *fakeInvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	if _, ok := f.invoices[invoice.ID]; !ok {
		return apperror.NewNotFoundError("Invoice")
	}
	stored := *invoice
	f.invoices[invoice.ID] = &stored
	return nil
}

func (f *fakeInvoiceRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) error {
	f.updateStatusCalls++
	invoice, ok := f.invoices[id]
	if !ok {
		return apperror.NewNotFoundError("Invoice")
	}
	invoice.Status = status
	return nil
}

func (f *fakeInvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.invoices[id]; !ok {
		return apperror.NewNotFoundError("Invoice")
	}
	delete(f.invoices, id)
	return nil
}

func (f *fakeInvoiceRepo) Stats(ctx context.Context) (*repository.InvoiceStats, error) {
	stats := &repository.InvoiceStats{CountsByStatus: make(map[string]int64)}
	for _, invoice := range f.invoices {
		stats.TotalInvoices++
		stats.CountsByStatus[invoice.Status.String()]++
	}
	return stats, nil
}
