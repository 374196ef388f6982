package repository

import (
	"gorm.io/gorm"

	"github.com/invoicely/invoicely-api/internal/domain/enum"
)

// SearchScope matches invoices whose customer name or number contains the
// term, case-insensitively. An empty term leaves the query untouched.
func SearchScope(term string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" {
			return db
		}
		like := "%" + term + "%"
		return db.Where("customer_name ILIKE ? OR invoice_number ILIKE ?", like, like)
	}
}

// StatusScope filters by invoice status when one is set.
func StatusScope(status *enum.InvoiceStatus) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if status == nil {
			return db
		}
		return db.Where("status = ?", *status)
	}
}

// OrderedItems preloads line items in their stored display order.
func OrderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("invoice_items.position ASC")
}
