package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes payment lifecycle of an order.
type OrderStatus string

const (
	OrderStatusPending            OrderStatus = "pending"
	OrderStatusPendingBankPayment OrderStatus = "pending_bank_payment"
	OrderStatusPaid               OrderStatus = "paid"
	OrderStatusCompleted          OrderStatus = "completed"
)

// ProjectType is the kind of website ordered.
type ProjectType string

const (
	ProjectTypeLanding   ProjectType = "landing"
	ProjectTypeCorporate ProjectType = "corporate"
	ProjectTypeShop      ProjectType = "shop"
)

// Valid reports whether project type is known.
func (p ProjectType) Valid() bool {
	switch p {
	case ProjectTypeLanding, ProjectTypeCorporate, ProjectTypeShop:
		return true
	}
	return false
}

// PaymentMethod selects how the client pays.
type PaymentMethod string

const (
	PaymentMethodCard    PaymentMethod = "card"
	PaymentMethodInvoice PaymentMethod = "invoice"
)

// Valid reports whether payment method is known.
func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCard || m == PaymentMethodInvoice
}

// CompanyDetails holds billing requisites for bank invoice payments.
type CompanyDetails struct {
	Name    string
	INN     string
	KPP     string
	Address string
}

// Empty reports whether no requisites were provided.
func (c CompanyDetails) Empty() bool {
	return c.Name == "" && c.INN == "" && c.KPP == "" && c.Address == ""
}

// Order is a client's purchase of a website-building service.
type Order struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	ProjectType   ProjectType
	Description   string
	Amount        decimal.Decimal
	TotalAmount   decimal.NullDecimal
	PaymentMethod PaymentMethod
	Company       CompanyDetails

	Status           OrderStatus
	PrepaymentInvID  *int64
	RemainingInvID   *int64
	PaidAt           *time.Time
	PrepaymentPaidAt *time.Time
	RemainingPaidAt  *time.Time
	Note             string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

// Remaining returns the balance left after prepayment.
func (o *Order) Remaining() decimal.Decimal {
	if !o.TotalAmount.Valid {
		return o.Amount
	}
	return o.TotalAmount.Decimal.Sub(o.Amount)
}

// Deleted reports whether order was soft-deleted.
func (o *Order) Deleted() bool {
	return o.DeletedAt != nil
}

// HandledInvoice reports whether the gateway invoice was already applied to the order.
func (o *Order) HandledInvoice(invID int64) bool {
	if o.PrepaymentInvID != nil && *o.PrepaymentInvID == invID {
		return true
	}
	return o.RemainingInvID != nil && *o.RemainingInvID == invID
}
