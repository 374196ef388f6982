package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/invoicely/invoicely-api/internal/domain/enum"
)

// Invoice is the persisted invoice record. Monetary columns are fixed-precision
// decimals, not floats, so values survive read/write cycles without drift.
type Invoice struct {
	ID              uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNumber   string             `gorm:"size:50;uniqueIndex;not null" json:"invoice_number"`
	CustomerName    string             `gorm:"size:255;not null" json:"customer_name"`
	InvoiceDate     time.Time          `gorm:"type:date;not null" json:"invoice_date"`
	DueDate         time.Time          `gorm:"type:date;not null" json:"due_date"`
	Subtotal        decimal.Decimal    `gorm:"type:numeric(12,2);not null" json:"subtotal"`
	DiscountPercent decimal.Decimal    `gorm:"type:numeric(5,2);not null;default:0" json:"discount"`
	DiscountAmount  decimal.Decimal    `gorm:"type:numeric(12,2);not null;default:0" json:"discount_amount"`
	Total           decimal.Decimal    `gorm:"type:numeric(12,2);not null" json:"total"`
	Status          enum.InvoiceStatus `gorm:"type:varchar(20);not null;default:'draft';check:status IN ('draft','sent','paid','overdue','cancelled')" json:"status"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`

	// Relationships
	Items []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem is one line item attached to an invoice. Items are immutable
// once the invoice is created; Position preserves the order the user entered
// them in.
type InvoiceItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID uuid.UUID       `gorm:"type:uuid;not null;index" json:"invoice_id"`
	Position  int             `gorm:"not null" json:"position"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Quantity  int             `gorm:"not null;check:quantity >= 0" json:"quantity"`
	Rate      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"rate"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (ii *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if ii.ID == uuid.Nil {
		ii.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}
