package entity

import "time"

// InvoiceSequence is the durable counter behind sequential invoice numbering.
// NextValue holds the value the next allocation will hand out; a single row
// (ID 1) is the process-wide authority, seeded at startup.
type InvoiceSequence struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	NextValue int64     `gorm:"not null;default:1" json:"next_value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the InvoiceSequence model
func (InvoiceSequence) TableName() string {
	return "invoice_sequences"
}
