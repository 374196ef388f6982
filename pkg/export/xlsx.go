// Package export writes invoice listings as spreadsheet files.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// Row is one exported invoice line.
type Row struct {
	InvoiceNumber  string
	CustomerName   string
	InvoiceDate    time.Time
	DueDate        time.Time
	Subtotal       float64
	DiscountAmount float64
	Total          float64
	Status         string
}

const sheet = "Invoices"

var headers = []string{
	"Invoice Number", "Customer", "Invoice Date", "Due Date",
	"Subtotal", "Discount", "Total", "Status",
}

// InvoicesXLSX renders rows into a single-sheet XLSX workbook.
func InvoicesXLSX(rows []Row) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.InvoiceNumber,
			row.CustomerName,
			row.InvoiceDate.Format("2006-01-02"),
			row.DueDate.Format("2006-01-02"),
			row.Subtotal,
			row.DiscountAmount,
			row.Total,
			row.Status,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "B", 22); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "C", "H", 14); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
