package pdf_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/invoicely/invoicely-api/pkg/money"
	"github.com/invoicely/invoicely-api/pkg/pdf"
)

func newRenderer() *pdf.Renderer {
	return pdf.New(money.New("$", "en"), pdf.Options{
		CompanyName: "Acme Studio",
		FooterNote:  "Thank you for your business!",
		Watermark:   "INVOICE",
	})
}

func testDocument() pdf.Document {
	invoiceDate := time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)
	return pdf.Document{
		InvoiceNumber:   "INV-2024-04-0007",
		CustomerName:    "Jane Cooper",
		InvoiceDate:     invoiceDate,
		DueDate:         invoiceDate.AddDate(0, 0, 30),
		DiscountPercent: 10,
		Subtotal:        250,
		DiscountAmount:  25,
		Total:           225,
		Items: []pdf.Item{
			{Name: "Design work", Quantity: 2, Rate: 100, Amount: 200},
			{Name: "Hosting", Quantity: 1, Rate: 50, Amount: 50},
		},
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	data, err := newRenderer().Render(testDocument())

	require.NoError(t, err)
	require.NotEmpty(t, data)
	require.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderEmptyItems(t *testing.T) {
	t.Parallel()

	doc := testDocument()
	doc.Items = nil
	doc.Subtotal = 0
	doc.DiscountAmount = 0
	doc.Total = 0

	data, err := newRenderer().Render(doc)

	require.NoError(t, err)
	require.Equal(t, "%PDF", string(data[:4]))
}

// The renderer must be total over malformed input: missing names, zero dates
// and non-finite numbers degrade to defaults instead of failing the render.
func TestRenderMalformedInput(t *testing.T) {
	t.Parallel()

	doc := pdf.Document{
		DiscountPercent: math.NaN(),
		Subtotal:        math.Inf(1),
		DiscountAmount:  math.NaN(),
		Total:           math.Inf(-1),
		Items: []pdf.Item{
			{Quantity: math.NaN(), Rate: math.Inf(1), Amount: math.NaN()},
		},
	}

	data, err := newRenderer().Render(doc)

	require.NoError(t, err)
	require.NotEmpty(t, data)
	require.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderZeroValueDocument(t *testing.T) {
	t.Parallel()

	data, err := newRenderer().Render(pdf.Document{})

	require.NoError(t, err)
	require.Equal(t, "%PDF", string(data[:4]))
}

// A long item list must overflow onto additional pages rather than run off
// the bottom of the first one.
func TestRenderOverflowsToMultiplePages(t *testing.T) {
	t.Parallel()

	doc := testDocument()
	doc.Items = nil
	for i := 0; i < 120; i++ {
		doc.Items = append(doc.Items, pdf.Item{
			Name:     "Recurring line",
			Quantity: 1,
			Rate:     10,
			Amount:   10,
		})
	}

	short, err := newRenderer().Render(testDocument())
	require.NoError(t, err)

	long, err := newRenderer().Render(doc)
	require.NoError(t, err)

	require.Equal(t, "%PDF", string(long[:4]))
	require.Greater(t, len(long), len(short))
}
