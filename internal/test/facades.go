package test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/webstudio/internal/domain/model"
	"github.com/polkiloo/webstudio/internal/domain/repository"
	"github.com/polkiloo/webstudio/internal/usecase"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn       func(context.Context, usecase.OrderInput) (*usecase.CreatedOrder, error)
	OrderFn        func(context.Context, string) (*model.Order, error)
	PayRemainingFn func(context.Context, string) (*usecase.RemainingPayment, error)
}

// CreateOrder delegates to provided function or returns a pending order.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, in usecase.OrderInput) (*usecase.CreatedOrder, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, in)
	}
	return &usecase.CreatedOrder{
		Order:      &model.Order{ID: "ord-1", Name: in.Name, Status: model.OrderStatusPending},
		PaymentURL: "https://pay.example/?InvId=1",
	}, nil
}

// Order returns configured order or a pending default.
func (s OrderFacadeStub) Order(ctx context.Context, id string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id, Status: model.OrderStatusPending, Amount: decimal.NewFromInt(100)}, nil
}

// PayRemaining returns configured link or a default one.
func (s OrderFacadeStub) PayRemaining(ctx context.Context, id string) (*usecase.RemainingPayment, error) {
	if s.PayRemainingFn != nil {
		return s.PayRemainingFn(ctx, id)
	}
	return &usecase.RemainingPayment{OrderID: id, Amount: decimal.NewFromInt(100), PaymentURL: "https://pay.example/?InvId=2"}, nil
}

// PaymentFacadeStub simulates gateway callback handling.
type PaymentFacadeStub struct {
	OrderCallbackFn   func(context.Context, map[string]string) (string, error)
	InvoiceCallbackFn func(context.Context, map[string]string) (string, error)
}

// HandleOrderCallback acknowledges with OK<InvId> by default.
func (s PaymentFacadeStub) HandleOrderCallback(ctx context.Context, fields map[string]string) (string, error) {
	if s.OrderCallbackFn != nil {
		return s.OrderCallbackFn(ctx, fields)
	}
	return "OK" + fields["InvId"], nil
}

// HandleInvoiceCallback acknowledges with OK<InvId> by default.
func (s PaymentFacadeStub) HandleInvoiceCallback(ctx context.Context, fields map[string]string) (string, error) {
	if s.InvoiceCallbackFn != nil {
		return s.InvoiceCallbackFn(ctx, fields)
	}
	return "OK" + fields["InvId"], nil
}

// InvoiceFacadeStub simulates additional invoice operations.
type InvoiceFacadeStub struct {
	CreateFn   func(context.Context, usecase.InvoiceInput) (*usecase.CreatedInvoice, error)
	InvoicesFn func(context.Context, string) ([]model.AdditionalInvoice, error)
}

// CreateInvoice returns configured invoice or a pending default.
func (s InvoiceFacadeStub) CreateInvoice(ctx context.Context, in usecase.InvoiceInput) (*usecase.CreatedInvoice, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, in)
	}
	return &usecase.CreatedInvoice{
		Invoice:    &model.AdditionalInvoice{ID: "inv-1", OrderID: in.OrderID, Status: model.InvoiceStatusPending, InvID: 3, InvoiceNumber: "INV-000003"},
		PaymentURL: "https://pay.example/?InvId=3",
	}, nil
}

// Invoices returns configured list or nothing.
func (s InvoiceFacadeStub) Invoices(ctx context.Context, orderID string) ([]model.AdditionalInvoice, error) {
	if s.InvoicesFn != nil {
		return s.InvoicesFn(ctx, orderID)
	}
	return nil, nil
}

// ContactFacadeStub simulates contact form submission.
type ContactFacadeStub struct {
	SubmitFn func(context.Context, usecase.ContactInput) error
}

// SubmitContact delegates to SubmitFn when set.
func (s ContactFacadeStub) SubmitContact(ctx context.Context, in usecase.ContactInput) error {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, in)
	}
	return nil
}

// AdminFacadeStub simulates back office operations.
type AdminFacadeStub struct {
	LoginFn  func(string, string) (string, error)
	ParseFn  func(string) (string, error)
	OrdersFn func(context.Context, repository.OrderFilter) ([]model.Order, error)
	NoteFn   func(context.Context, string, string) (*model.Order, error)
	DeleteFn func(context.Context, string) error
}

// AdminLogin returns a token by default.
func (s AdminFacadeStub) AdminLogin(login, password string) (string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(login, password)
	}
	return "token", nil
}

// ParseToken accepts every token as admin by default.
func (s AdminFacadeStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return "admin", nil
}

// AdminOrders returns configured orders.
func (s AdminFacadeStub) AdminOrders(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, filter)
	}
	return nil, nil
}

// SetOrderNote echoes the note by default.
func (s AdminFacadeStub) SetOrderNote(ctx context.Context, id, note string) (*model.Order, error) {
	if s.NoteFn != nil {
		return s.NoteFn(ctx, id, note)
	}
	return &model.Order{ID: id, Note: note, Status: model.OrderStatusPending}, nil
}

// DeleteOrder succeeds by default.
func (s AdminFacadeStub) DeleteOrder(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// HealthFacadeStub reports configured readiness.
type HealthFacadeStub struct {
	Err error
}

// Health returns Err.
func (s HealthFacadeStub) Health(context.Context) error { return s.Err }

// StudioFacadeStub aggregates facade dependencies for HTTP layer tests.
type StudioFacadeStub struct {
	OrderFacadeStub
	PaymentFacadeStub
	InvoiceFacadeStub
	ContactFacadeStub
	AdminFacadeStub
	HealthFacadeStub
}
