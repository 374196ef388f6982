package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/invoicely/invoicely-api/internal/domain/entity"
	"github.com/invoicely/invoicely-api/internal/domain/enum"
	domainRepo "github.com/invoicely/invoicely-api/internal/domain/repository"
	"github.com/invoicely/invoicely-api/pkg/apperror"
)

// Sortable columns for invoice listing. Anything else falls back to created_at
// so user input never reaches the ORDER BY clause verbatim.
var invoiceSortColumns = map[string]string{
	"created_at":    "created_at",
	"invoice_date":  "invoice_date",
	"total":         "total",
	"customer_name": "customer_name",
}

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	// Header and items go in one transaction; a failed items insert rolls the
	// header back so a header-without-items row can never be observed.
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := invoice.Items
		invoice.Items = nil

		if err := tx.Create(invoice).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].InvoiceID = invoice.ID
			items[i].Position = i
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}

		invoice.Items = items
		return nil
	})
	if err != nil {
		return translateError(err, invoice.InvoiceNumber)
	}
	return nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("Items", OrderedItems).
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translateError(err, "")
	}
	return &invoice, nil
}

func (r *invoiceRepository) GetByNumber(ctx context.Context, number string) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("Items", OrderedItems).
		First(&invoice, "invoice_number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translateError(err, "")
	}
	return &invoice, nil
}

func (r *invoiceRepository) List(ctx context.Context, params *domainRepo.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	var invoices []entity.Invoice
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Scopes(SearchScope(params.Search), StatusScope(params.Status))

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateError(err, "")
	}

	sortBy, ok := invoiceSortColumns[params.SortBy]
	if !ok {
		sortBy = "created_at"
	}
	sortOrder := "DESC"
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items", OrderedItems).
		Order(sortBy + " " + sortOrder).
		Find(&invoices).Error
	if err != nil {
		return nil, 0, translateError(err, "")
	}

	return invoices, total, nil
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *entity.Invoice) error {
	err := r.db.WithContext(ctx).Omit("Items").Save(invoice).Error
	return translateError(err, invoice.InvoiceNumber)
}

func (r *invoiceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) error {
	err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Where("id = ?", id).
		Update("status", status).Error
	return translateError(err, "")
}

func (r *invoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Items carry ON DELETE CASCADE; deleting the header is enough.
	err := r.db.WithContext(ctx).Delete(&entity.Invoice{}, "id = ?", id).Error
	return translateError(err, "")
}

func (r *invoiceRepository) Stats(ctx context.Context) (*domainRepo.InvoiceStats, error) {
	stats := &domainRepo.InvoiceStats{
		CountsByStatus: make(map[string]int64),
	}

	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) as count
		FROM invoices
		GROUP BY status
	`).Scan(&rows).Error
	if err != nil {
		return nil, translateError(err, "")
	}
	for _, status := range enum.InvoiceStatuses {
		stats.CountsByStatus[status.String()] = 0
	}
	for _, row := range rows {
		stats.CountsByStatus[row.Status] = row.Count
		stats.TotalInvoices += row.Count
	}

	err = r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0)
		FROM invoices
		WHERE status = 'paid'
	`).Scan(&stats.TotalRevenue).Error
	if err != nil {
		return nil, translateError(err, "")
	}

	// Trailing twelve months, oldest first, zero-filled for empty months.
	now := time.Now()
	for i := 11; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, 0)

		var revenue float64
		err := r.db.WithContext(ctx).Raw(`
			SELECT COALESCE(SUM(total), 0)
			FROM invoices
			WHERE status = 'paid'
			AND invoice_date >= ? AND invoice_date < ?
		`, monthStart, monthEnd).Scan(&revenue).Error
		if err != nil {
			return nil, translateError(err, "")
		}

		stats.MonthlyRevenue = append(stats.MonthlyRevenue, domainRepo.MonthlyRevenue{
			Month:   monthStart.Format("2006-01"),
			Revenue: revenue,
		})
	}

	return stats, nil
}

// translateError maps driver errors onto the application error taxonomy:
// unique violations become duplicate-number conflicts, connectivity failures
// become storage-unavailable, everything else passes through.
func translateError(err error, number string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if number != "" {
			return apperror.NewDuplicateNumberError(number)
		}
		return apperror.ErrConflict
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return apperror.NewStorageUnavailableError("Database request timed out")
	}

	return err
}
