package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/invoicely/invoicely-api/internal/application/service"
	"github.com/invoicely/invoicely-api/internal/domain/enum"
	"github.com/invoicely/invoicely-api/internal/domain/repository"
	"github.com/invoicely/invoicely-api/internal/presentation/http/dto/request"
	"github.com/invoicely/invoicely-api/internal/presentation/http/dto/response"
	"github.com/invoicely/invoicely-api/pkg/pagination"
)

// InvoiceHandler handles invoice-related HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
	numberService  *service.NumberService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService, numberService *service.NumberService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		numberService:  numberService,
	}
}

// filterParams reads the shared list/export query parameters. An unknown
// status value is an error, not an ignored filter.
func filterParams(c *gin.Context) (*repository.InvoiceFilterParams, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	params := &repository.InvoiceFilterParams{
		Pagination: &pagination.Params{
			Page:    page,
			PerPage: limit,
		},
		Search:    c.Query("search"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status, err := enum.ParseInvoiceStatus(statusStr)
		if err != nil {
			return nil, err
		}
		params.Status = &status
	}

	return params, nil
}

// List handles listing invoices with search, status filter, sorting and
// pagination
func (h *InvoiceHandler) List(c *gin.Context) {
	params, err := filterParams(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoices retrieved successfully", gin.H{
		"invoices":   result.Items,
		"pagination": result.Pagination,
	})
}

// Create handles creating an invoice
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.CreateInvoiceInput{
		InvoiceNumber:   req.InvoiceNumber,
		CustomerName:    req.CustomerName,
		DiscountPercent: req.Discount,
		Status:          req.Status,
	}

	if req.InvoiceDate != "" {
		date, ok := parseDate(req.InvoiceDate)
		if !ok {
			response.BadRequest(c, "Invalid invoice_date, expected YYYY-MM-DD")
			return
		}
		input.InvoiceDate = date
	}

	for _, item := range req.Items {
		input.Items = append(input.Items, service.ItemInput{
			Name:     item.Name,
			Quantity: item.Quantity,
			Rate:     item.Rate,
		})
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created successfully", invoice)
}

// Get handles getting a single invoice
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoice)
}

// GetByNumber handles looking an invoice up by its invoice number
func (h *InvoiceHandler) GetByNumber(c *gin.Context) {
	invoice, err := h.invoiceService.GetInvoiceByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoice)
}

// Update handles a partial invoice update, including status transitions
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req request.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.UpdateInvoiceInput{
		CustomerName:    req.CustomerName,
		DiscountPercent: req.Discount,
		Status:          req.Status,
	}

	if req.InvoiceDate != nil {
		date, ok := parseDate(*req.InvoiceDate)
		if !ok {
			response.BadRequest(c, "Invalid invoice_date, expected YYYY-MM-DD")
			return
		}
		input.InvoiceDate = &date
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice updated successfully", invoice)
}

// Delete handles deleting an invoice and its items
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice deleted successfully", nil)
}

// PDF handles rendering an invoice as a PDF document
func (h *InvoiceHandler) PDF(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	data, filename, err := h.invoiceService.RenderPDF(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(200, "application/pdf", data)
}

// Stats handles the aggregate statistics endpoint
func (h *InvoiceHandler) Stats(c *gin.Context) {
	stats, err := h.invoiceService.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice statistics retrieved successfully", stats)
}

// NextNumber handles previewing the next invoice number without allocating it
func (h *InvoiceHandler) NextNumber(c *gin.Context) {
	number, err := h.numberService.Peek(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Next invoice number retrieved successfully", gin.H{
		"invoice_number": number,
	})
}

// ResetSequence handles resetting the invoice number counter back to 1
func (h *InvoiceHandler) ResetSequence(c *gin.Context) {
	if err := h.numberService.Reset(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice number sequence reset successfully", nil)
}

// Export handles exporting the filtered invoice list as an XLSX workbook
func (h *InvoiceHandler) Export(c *gin.Context) {
	params, err := filterParams(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	data, err := h.invoiceService.ExportXLSX(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="invoices.xlsx"`)
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
