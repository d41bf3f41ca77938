package model

import "github.com/shopspring/decimal"

// NotificationKind enumerates messages sent to the studio chat.
type NotificationKind string

const (
	NotificationOrderCreated       NotificationKind = "order_created"
	NotificationBankInvoiceRequest NotificationKind = "bank_invoice_requested"
	NotificationPrepaymentReceived NotificationKind = "prepayment_received"
	NotificationOrderFullyPaid     NotificationKind = "order_fully_paid"
	NotificationInvoiceCreated     NotificationKind = "invoice_created"
	NotificationInvoicePaid        NotificationKind = "invoice_paid"
	NotificationContactRequest     NotificationKind = "contact_request"
)

// Notification carries data for a single outbound message.
type Notification struct {
	Kind            NotificationKind
	OrderID         string
	InvoiceID       string
	InvoiceNumber   string
	ClientName      string
	Email           string
	Phone           string
	ProjectType     ProjectType
	Amount          decimal.Decimal
	Company         CompanyDetails
	Message         string
	PayRemainingURL string
}
