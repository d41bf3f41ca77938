package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus describes additional invoice lifecycle.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// AdditionalInvoice is a supplementary charge tied to an existing order.
type AdditionalInvoice struct {
	ID            string
	OrderID       string
	Description   string
	Amount        decimal.Decimal
	Status        InvoiceStatus
	InvID         int64
	InvoiceNumber string
	PaidAt        *time.Time
	CreatedAt     time.Time
}
