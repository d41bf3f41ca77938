package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/webstudio/internal/domain/errors"
	"github.com/polkiloo/webstudio/internal/domain/model"
	"github.com/polkiloo/webstudio/internal/domain/repository"
)

// InvoiceInput describes a supplementary charge for an existing order.
type InvoiceInput struct {
	OrderID       string
	Description   string
	Amount        string
	InvoiceNumber string
}

// CreatedInvoice is a stored invoice with its signed payment link.
type CreatedInvoice struct {
	Invoice    *model.AdditionalInvoice
	PaymentURL string
}

// InvoiceUseCase manages additional invoices.
type InvoiceUseCase struct {
	orders   repository.OrderRepository
	invoices repository.InvoiceRepository
	payments *PaymentRequestBuilder
	notifier Notifier
	logger   *slog.Logger
}

// NewInvoiceUseCase constructs InvoiceUseCase.
func NewInvoiceUseCase(orders repository.OrderRepository, invoices repository.InvoiceRepository, payments *PaymentRequestBuilder, notifier Notifier, logger *slog.Logger) *InvoiceUseCase {
	return &InvoiceUseCase{orders: orders, invoices: invoices, payments: payments, notifier: notifier, logger: logger}
}

// Create issues an invoice for an existing order.
func (u *InvoiceUseCase) Create(ctx context.Context, in InvoiceInput) (*CreatedInvoice, error) {
	in.OrderID = strings.TrimSpace(in.OrderID)
	in.Description = strings.TrimSpace(in.Description)
	in.InvoiceNumber = strings.TrimSpace(in.InvoiceNumber)

	fields := make(map[string]string)
	if in.OrderID == "" {
		fields["orderId"] = "is required"
	}
	if in.Description == "" {
		fields["description"] = "is required"
	}
	amount, err := ParseAmount(in.Amount)
	if err != nil {
		fields["amount"] = "must be a positive amount with at most two decimals"
	}
	if err := domainErrors.NewValidationError(fields); err != nil {
		return nil, err
	}

	order, err := u.existingOrder(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}

	invoice := &model.AdditionalInvoice{
		ID:            uuid.NewString(),
		OrderID:       order.ID,
		Description:   in.Description,
		Amount:        amount,
		Status:        model.InvoiceStatusPending,
		InvoiceNumber: in.InvoiceNumber,
	}
	link, err := u.payments.Build(ctx, amount, in.Description, invoice.ID)
	if err != nil {
		return nil, err
	}
	invoice.InvID = link.InvID
	if invoice.InvoiceNumber == "" {
		invoice.InvoiceNumber = fmt.Sprintf("INV-%06d", link.InvID)
	}

	if err := u.invoices.Create(ctx, invoice); err != nil {
		return nil, errors.Wrap(err, "create invoice")
	}

	notifyBestEffort(ctx, u.notifier, u.logger, model.Notification{
		Kind:          model.NotificationInvoiceCreated,
		OrderID:       order.ID,
		InvoiceID:     invoice.ID,
		InvoiceNumber: invoice.InvoiceNumber,
		ClientName:    order.Name,
		Email:         order.Email,
		Phone:         order.Phone,
		Amount:        amount,
		Message:       invoice.Description,
	})
	return &CreatedInvoice{Invoice: invoice, PaymentURL: link.URL}, nil
}

// ListByOrder returns invoices of an existing order, oldest first.
func (u *InvoiceUseCase) ListByOrder(ctx context.Context, orderID string) ([]model.AdditionalInvoice, error) {
	if _, err := u.existingOrder(ctx, orderID); err != nil {
		return nil, err
	}
	return u.invoices.ListByOrder(ctx, orderID)
}

func (u *InvoiceUseCase) existingOrder(ctx context.Context, id string) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Deleted() {
		return nil, domainErrors.ErrNotFound
	}
	return order, nil
}
