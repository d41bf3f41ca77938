package handlers

import (
	"context"

	"github.com/polkiloo/webstudio/internal/domain/model"
	"github.com/polkiloo/webstudio/internal/domain/repository"
	"github.com/polkiloo/webstudio/internal/usecase"
)

// OrderFacade encapsulates public order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, in usecase.OrderInput) (*usecase.CreatedOrder, error)
	Order(ctx context.Context, id string) (*model.Order, error)
	PayRemaining(ctx context.Context, id string) (*usecase.RemainingPayment, error)
}

// PaymentFacade handles gateway callbacks and returns acknowledgment bodies.
type PaymentFacade interface {
	HandleOrderCallback(ctx context.Context, fields map[string]string) (string, error)
	HandleInvoiceCallback(ctx context.Context, fields map[string]string) (string, error)
}

// InvoiceFacade provides additional invoice operations.
type InvoiceFacade interface {
	CreateInvoice(ctx context.Context, in usecase.InvoiceInput) (*usecase.CreatedInvoice, error)
	Invoices(ctx context.Context, orderID string) ([]model.AdditionalInvoice, error)
}

// ContactFacade forwards contact form submissions.
type ContactFacade interface {
	SubmitContact(ctx context.Context, in usecase.ContactInput) error
}

// AdminFacade describes back office capabilities.
type AdminFacade interface {
	AdminLogin(login, password string) (string, error)
	ParseToken(token string) (string, error)
	AdminOrders(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error)
	SetOrderNote(ctx context.Context, id, note string) (*model.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

// HealthFacade reports readiness of dependencies.
type HealthFacade interface {
	Health(ctx context.Context) error
}

// StudioFacade aggregates the full set of operations used across handlers.
type StudioFacade interface {
	OrderFacade
	PaymentFacade
	InvoiceFacade
	ContactFacade
	AdminFacade
	HealthFacade
}
