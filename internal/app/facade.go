package app

import (
	"context"

	"github.com/polkiloo/webstudio/internal/domain/model"
	"github.com/polkiloo/webstudio/internal/domain/repository"
	"github.com/polkiloo/webstudio/internal/usecase"
)

// HealthChecker reports storage readiness.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type StudioFacade struct {
	orders    *usecase.OrderUseCase
	callbacks *usecase.CallbackUseCase
	invoices  *usecase.InvoiceUseCase
	contacts  *usecase.ContactUseCase
	admin     *usecase.AdminUseCase
	health    HealthChecker
}

func NewStudioFacade(
	orders *usecase.OrderUseCase,
	callbacks *usecase.CallbackUseCase,
	invoices *usecase.InvoiceUseCase,
	contacts *usecase.ContactUseCase,
	admin *usecase.AdminUseCase,
	health HealthChecker,
) *StudioFacade {
	return &StudioFacade{
		orders:    orders,
		callbacks: callbacks,
		invoices:  invoices,
		contacts:  contacts,
		admin:     admin,
		health:    health,
	}
}

func (f *StudioFacade) CreateOrder(ctx context.Context, in usecase.OrderInput) (*usecase.CreatedOrder, error) {
	return f.orders.Create(ctx, in)
}

func (f *StudioFacade) Order(ctx context.Context, id string) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *StudioFacade) PayRemaining(ctx context.Context, id string) (*usecase.RemainingPayment, error) {
	return f.orders.PayRemaining(ctx, id)
}

func (f *StudioFacade) HandleOrderCallback(ctx context.Context, fields map[string]string) (string, error) {
	return f.callbacks.HandleOrderPayment(ctx, fields)
}

func (f *StudioFacade) HandleInvoiceCallback(ctx context.Context, fields map[string]string) (string, error) {
	return f.callbacks.HandleInvoicePayment(ctx, fields)
}

func (f *StudioFacade) CreateInvoice(ctx context.Context, in usecase.InvoiceInput) (*usecase.CreatedInvoice, error) {
	return f.invoices.Create(ctx, in)
}

func (f *StudioFacade) Invoices(ctx context.Context, orderID string) ([]model.AdditionalInvoice, error) {
	return f.invoices.ListByOrder(ctx, orderID)
}

func (f *StudioFacade) SubmitContact(ctx context.Context, in usecase.ContactInput) error {
	return f.contacts.Submit(ctx, in)
}

func (f *StudioFacade) AdminLogin(login, password string) (string, error) {
	return f.admin.Login(login, password)
}

func (f *StudioFacade) ParseToken(token string) (string, error) {
	return f.admin.ParseToken(token)
}

func (f *StudioFacade) AdminOrders(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error) {
	return f.orders.List(ctx, filter)
}

func (f *StudioFacade) SetOrderNote(ctx context.Context, id, note string) (*model.Order, error) {
	return f.orders.SetNote(ctx, id, note)
}

func (f *StudioFacade) DeleteOrder(ctx context.Context, id string) error {
	return f.orders.SoftDelete(ctx, id)
}

func (f *StudioFacade) Health(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
