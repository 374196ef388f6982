package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/invoicely/invoicely-api/internal/application/service"
	"github.com/invoicely/invoicely-api/internal/domain/entity"
	"github.com/invoicely/invoicely-api/internal/domain/enum"
	"github.com/invoicely/invoicely-api/internal/domain/repository"
	"github.com/invoicely/invoicely-api/pkg/money"
	"github.com/invoicely/invoicely-api/pkg/pdf"
)

type stubInvoiceRepo struct{}

func (stubInvoiceRepo) Create(context.Context, *entity.Invoice) error { return nil }
func (stubInvoiceRepo) GetByID(context.Context, uuid.UUID) (*entity.Invoice, error) {
	return nil, nil
}
func (stubInvoiceRepo) GetByNumber(context.Context, string) (*entity.Invoice, error) {
	return nil, nil
}
func (stubInvoiceRepo) List(context.Context, *repository.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	return nil, 0, nil
}
func (stubInvoiceRepo) Update(context.Context, *entity.Invoice) error { return nil }
func (stubInvoiceRepo) UpdateStatus(context.Context, uuid.UUID, enum.InvoiceStatus) error {
	return nil
}
func (stubInvoiceRepo) Delete(context.Context, uuid.UUID) error { return nil }
func (stubInvoiceRepo) Stats(context.Context) (*repository.InvoiceStats, error) {
	return &repository.InvoiceStats{}, nil
}

type stubSequenceRepo struct{}

func (stubSequenceRepo) Next(context.Context) (int64, error) { return 1, nil }
func (stubSequenceRepo) Peek(context.Context) (int64, error) { return 1, nil }
func (stubSequenceRepo) Reset(context.Context) error         { return nil }

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	numbers := service.NewNumberService(stubSequenceRepo{}, "INV")
	renderer := pdf.New(money.New("$", "en"), pdf.Options{CompanyName: "Acme Studio"})
	invoices := service.NewInvoiceService(stubInvoiceRepo{}, numbers, renderer, 30)
	h := NewInvoiceHandler(invoices, numbers)

	router := gin.New()
	router.GET("/invoices", h.List)
	return router
}

func TestListRejectsUnknownStatusFilter(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/invoices?status=archived", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAcceptsKnownStatusFilter(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/invoices?status=paid", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}
