// Package pdf renders a fully-resolved invoice into a fixed-layout A4 PDF.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/invoicely/invoicely-api/pkg/money"
)

// Item is one printable line-item row.
type Item struct {
	Name     string
	Quantity float64
	Rate     float64
	Amount   float64
}

// Document is the input to Render. It carries everything that appears on the
// page; callers resolve the invoice record into this shape first.
type Document struct {
	InvoiceNumber   string
	CustomerName    string
	InvoiceDate     time.Time
	DueDate         time.Time
	Items           []Item
	DiscountPercent float64
	Subtotal        float64
	DiscountAmount  float64
	Total           float64
}

// Options is the fixed letterhead content shared by every rendered invoice.
type Options struct {
	CompanyName string
	FooterNote  string
	Watermark   string
}

// Renderer maps a Document onto the fixed page layout. Money strings come from
// the injected formatter so render output matches the API's display format.
type Renderer struct {
	money *money.Formatter
	opts  Options
}

// New creates a Renderer.
func New(formatter *money.Formatter, opts Options) *Renderer {
	if opts.CompanyName == "" {
		opts.CompanyName = "Invoicely"
	}
	return &Renderer{money: formatter, opts: opts}
}

// Page geometry in millimeters (A4 portrait).
const (
	marginX     = 15.0
	contentW    = 180.0
	rowH        = 8.0
	tableBottom = 260.0

	colDescW   = 90.0
	colQtyW    = 20.0
	colRateW   = 35.0
	colAmountW = 35.0
)

const dateLayout = "Jan 02, 2006"

// Render produces the PDF bytes for doc. Malformed input never fails the
// render: the document is sanitized into a fully-defaulted value before any
// layout happens. Only genuine engine failures return an error.
func (r *Renderer) Render(doc Document) ([]byte, error) {
	doc = sanitize(doc)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginX, 15, marginX)
	pdf.SetAutoPageBreak(false, 15)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-25)
		pdf.SetFont("Arial", "", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(contentW, 5, r.opts.FooterNote, "", 1, "C", false, 0, "")
		pdf.CellFormat(contentW, 5,
			fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	r.drawHeader(pdf, doc)
	r.drawInfoBlock(pdf, doc)
	r.drawItemTable(pdf, doc)
	r.drawSummary(pdf, doc)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawHeader(pdf *gofpdf.Fpdf, doc Document) {
	if r.opts.Watermark != "" {
		pdf.SetFont("Arial", "B", 60)
		pdf.SetTextColor(245, 245, 245)
		pdf.TransformBegin()
		pdf.TransformRotate(45, 105, 150)
		pdf.Text(35, 160, r.opts.Watermark)
		pdf.TransformEnd()
	}

	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(40, 40, 40)
	pdf.CellFormat(contentW/2, 12, r.opts.CompanyName, "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 12, "INVOICE", "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(contentW, 6, doc.InvoiceNumber, "", 1, "R", false, 0, "")
	pdf.Ln(6)
}

func (r *Renderer) drawInfoBlock(pdf *gofpdf.Fpdf, doc Document) {
	startY := pdf.GetY()

	// Left column: bill-to.
	pdf.SetFont("Arial", "B", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(contentW/2, 6, "BILL TO", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(40, 40, 40)
	pdf.CellFormat(contentW/2, 6, doc.CustomerName, "", 1, "L", false, 0, "")

	// Right column: number and dates.
	pdf.SetY(startY)
	rows := []struct{ label, value string }{
		{"Invoice Number", doc.InvoiceNumber},
		{"Invoice Date", doc.InvoiceDate.Format(dateLayout)},
		{"Due Date", doc.DueDate.Format(dateLayout)},
	}
	for _, row := range rows {
		pdf.SetX(marginX + contentW/2)
		pdf.SetFont("Arial", "B", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(45, 6, row.label, "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(40, 40, 40)
		pdf.CellFormat(contentW/2-45, 6, row.value, "", 1, "R", false, 0, "")
	}
	pdf.Ln(8)
}

func (r *Renderer) drawTableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(52, 73, 94)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(colDescW, rowH, "  Description", "", 0, "L", true, 0, "")
	pdf.CellFormat(colQtyW, rowH, "Qty", "", 0, "C", true, 0, "")
	pdf.CellFormat(colRateW, rowH, "Rate", "", 0, "R", true, 0, "")
	pdf.CellFormat(colAmountW, rowH, "Amount  ", "", 1, "R", true, 0, "")
}

func (r *Renderer) drawItemTable(pdf *gofpdf.Fpdf, doc Document) {
	r.drawTableHeader(pdf)

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(40, 40, 40)
	pdf.SetFillColor(245, 247, 250)

	if len(doc.Items) == 0 {
		pdf.CellFormat(colDescW, rowH, "  No items", "", 0, "L", false, 0, "")
		pdf.CellFormat(colQtyW, rowH, "0", "", 0, "C", false, 0, "")
		pdf.CellFormat(colRateW, rowH, r.money.Zero(), "", 0, "R", false, 0, "")
		pdf.CellFormat(colAmountW, rowH, r.money.Zero()+"  ", "", 1, "R", false, 0, "")
		return
	}

	for i, item := range doc.Items {
		// Overflow to a fresh page, repeating the table header.
		if pdf.GetY()+rowH > tableBottom {
			pdf.AddPage()
			r.drawTableHeader(pdf)
			pdf.SetFont("Arial", "", 10)
			pdf.SetTextColor(40, 40, 40)
			pdf.SetFillColor(245, 247, 250)
		}

		fill := i%2 == 1
		pdf.CellFormat(colDescW, rowH, "  "+item.Name, "", 0, "L", fill, 0, "")
		pdf.CellFormat(colQtyW, rowH, trimQuantity(item.Quantity), "", 0, "C", fill, 0, "")
		pdf.CellFormat(colRateW, rowH, r.money.Format(item.Rate), "", 0, "R", fill, 0, "")
		pdf.CellFormat(colAmountW, rowH, r.money.Format(item.Amount)+"  ", "", 1, "R", fill, 0, "")
	}
}

func (r *Renderer) drawSummary(pdf *gofpdf.Fpdf, doc Document) {
	if pdf.GetY()+3*rowH+10 > tableBottom {
		pdf.AddPage()
	}
	pdf.Ln(4)

	labelW := contentW - 45.0
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(40, 40, 40)
	pdf.CellFormat(labelW, 7, "Subtotal", "", 0, "R", false, 0, "")
	pdf.CellFormat(45, 7, r.money.Format(doc.Subtotal)+"  ", "", 1, "R", false, 0, "")

	pdf.CellFormat(labelW, 7,
		fmt.Sprintf("Discount (%s%%)", trimQuantity(doc.DiscountPercent)), "", 0, "R", false, 0, "")
	pdf.CellFormat(45, 7, "-"+r.money.Format(doc.DiscountAmount)+"  ", "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(52, 73, 94)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(labelW, 9, "Total  ", "", 0, "R", true, 0, "")
	pdf.CellFormat(45, 9, r.money.Format(doc.Total)+"  ", "", 1, "R", true, 0, "")
}

// trimQuantity renders whole numbers without a fractional part.
func trimQuantity(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
