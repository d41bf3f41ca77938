package dto

import (
	"encoding/json"
	"time"
)

// CreateInvoiceRequest issues an additional invoice for an order.
type CreateInvoiceRequest struct {
	OrderID       string      `json:"orderId" binding:"required"`
	Description   string      `json:"description" binding:"required"`
	Amount        json.Number `json:"amount" binding:"required"`
	InvoiceNumber string      `json:"invoiceNumber"`
}

// CreateInvoiceResponse is returned for a new invoice.
type CreateInvoiceResponse struct {
	Success       bool   `json:"success"`
	InvoiceID     string `json:"invoiceId"`
	InvoiceNumber string `json:"invoiceNumber"`
	PaymentURL    string `json:"paymentUrl"`
}

// InvoiceResponse describes an additional invoice.
type InvoiceResponse struct {
	ID            string     `json:"id"`
	OrderID       string     `json:"orderId"`
	Description   string     `json:"description"`
	Amount        string     `json:"amount"`
	Status        string     `json:"status"`
	InvID         int64      `json:"invId"`
	InvoiceNumber string     `json:"invoiceNumber"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// InvoiceListResponse wraps invoices of an order.
type InvoiceListResponse struct {
	Success  bool              `json:"success"`
	Invoices []InvoiceResponse `json:"invoices"`
}
