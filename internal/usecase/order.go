package usecase

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/polkiloo/webstudio/internal/config"
	domainErrors "github.com/polkiloo/webstudio/internal/domain/errors"
	"github.com/polkiloo/webstudio/internal/domain/model"
	"github.com/polkiloo/webstudio/internal/domain/repository"
)

// Notifier delivers studio notifications. Failures are reported but must never
// block the caller on network I/O.
type Notifier interface {
	Notify(ctx context.Context, n model.Notification) error
}

// OrderInput is a client order submission.
type OrderInput struct {
	Name          string
	Email         string
	Phone         string
	ProjectType   model.ProjectType
	Description   string
	Amount        string
	TotalAmount   string
	PaymentMethod model.PaymentMethod
	Company       model.CompanyDetails
}

// CreatedOrder is the result of order submission. PaymentURL is empty for bank invoice orders.
type CreatedOrder struct {
	Order      *model.Order
	PaymentURL string
}

// RemainingPayment is a signed link for the balance left after prepayment.
type RemainingPayment struct {
	OrderID    string
	Amount     decimal.Decimal
	PaymentURL string
}

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders   repository.OrderRepository
	payments *PaymentRequestBuilder
	notifier Notifier
	siteURL  string
	logger   *slog.Logger
	now      func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, payments *PaymentRequestBuilder, notifier Notifier, cfg *config.Config, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{
		orders:   orders,
		payments: payments,
		notifier: notifier,
		siteURL:  cfg.SiteURL,
		logger:   logger,
		now:      time.Now,
	}
}

// Create validates the submission, stores a new order and signs its prepayment link.
func (u *OrderUseCase) Create(ctx context.Context, in OrderInput) (*CreatedOrder, error) {
	valid, err := validateOrderInput(&in)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		ProjectType:   in.ProjectType,
		Description:   in.Description,
		Amount:        valid.amount,
		TotalAmount:   decimal.NewNullDecimal(valid.total),
		PaymentMethod: valid.method,
		Status:        model.OrderStatusPending,
	}

	var paymentURL string
	kind := model.NotificationOrderCreated
	if valid.method == model.PaymentMethodInvoice {
		order.Company = in.Company
		order.Status = model.OrderStatusPendingBankPayment
		kind = model.NotificationBankInvoiceRequest
	} else {
		link, err := u.payments.Build(ctx, order.Amount, "Prepayment for website development, order "+order.ID, order.ID)
		if err != nil {
			return nil, err
		}
		paymentURL = link.URL
	}

	if err := u.orders.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "create order")
	}

	u.notify(ctx, orderNotification(kind, order, order.Amount))
	return &CreatedOrder{Order: order, PaymentURL: paymentURL}, nil
}

// Get returns a non-deleted order.
func (u *OrderUseCase) Get(ctx context.Context, id string) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Deleted() {
		return nil, domainErrors.ErrNotFound
	}
	return order, nil
}

// PayRemaining signs a link for the remaining balance. Order status is not changed.
func (u *OrderUseCase) PayRemaining(ctx context.Context, id string) (*RemainingPayment, error) {
	order, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := CheckPayRemaining(order); err != nil {
		return nil, err
	}

	remaining := order.Remaining()
	link, err := u.payments.Build(ctx, remaining, "Remaining payment for website development, order "+order.ID, order.ID)
	if err != nil {
		return nil, err
	}
	return &RemainingPayment{OrderID: order.ID, Amount: remaining, PaymentURL: link.URL}, nil
}

// List returns orders for the back office.
func (u *OrderUseCase) List(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error) {
	return u.orders.List(ctx, filter)
}

// SetNote replaces the internal note of an order.
func (u *OrderUseCase) SetNote(ctx context.Context, id, note string) (*model.Order, error) {
	note = strings.TrimSpace(note)
	return u.orders.Update(ctx, id, func(o *model.Order) (bool, error) {
		if o.Deleted() {
			return false, domainErrors.ErrNotFound
		}
		if o.Note == note {
			return false, nil
		}
		o.Note = note
		return true, nil
	})
}

// SoftDelete hides the order. Deleting twice is not an error.
func (u *OrderUseCase) SoftDelete(ctx context.Context, id string) error {
	_, err := u.orders.Update(ctx, id, func(o *model.Order) (bool, error) {
		if o.Deleted() {
			return false, nil
		}
		now := u.now()
		o.DeletedAt = &now
		return true, nil
	})
	return err
}

// PayRemainingURL is the public page where the client pays the balance.
func PayRemainingURL(siteURL, orderID string) string {
	return siteURL + "/pay-remaining?orderId=" + url.QueryEscape(orderID)
}

func (u *OrderUseCase) notify(ctx context.Context, n model.Notification) {
	notifyBestEffort(ctx, u.notifier, u.logger, n)
}

func orderNotification(kind model.NotificationKind, order *model.Order, amount decimal.Decimal) model.Notification {
	return model.Notification{
		Kind:        kind,
		OrderID:     order.ID,
		ClientName:  order.Name,
		Email:       order.Email,
		Phone:       order.Phone,
		ProjectType: order.ProjectType,
		Amount:      amount,
		Company:     order.Company,
		Message:     order.Description,
	}
}

func notifyBestEffort(ctx context.Context, notifier Notifier, logger *slog.Logger, n model.Notification) {
	if err := notifier.Notify(ctx, n); err != nil {
		logger.Warn("notification dropped",
			slog.String("kind", string(n.Kind)),
			slog.String("order", n.OrderID),
			slog.String("error", err.Error()),
		)
	}
}
