package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/polkiloo/webstudio/internal/config"
	domainErrors "github.com/polkiloo/webstudio/internal/domain/errors"
	"github.com/polkiloo/webstudio/internal/domain/model"
	"github.com/polkiloo/webstudio/internal/domain/repository"
	"github.com/polkiloo/webstudio/internal/pkg/robokassa"
)

// CallbackUseCase handles gateway result notifications for orders and additional invoices.
type CallbackUseCase struct {
	orders   repository.OrderRepository
	invoices repository.InvoiceRepository
	events   repository.PaymentEventRepository
	gateway  PaymentGateway
	notifier Notifier
	siteURL  string
	logger   *slog.Logger
	now      func() time.Time
}

// NewCallbackUseCase constructs CallbackUseCase.
func NewCallbackUseCase(
	orders repository.OrderRepository,
	invoices repository.InvoiceRepository,
	events repository.PaymentEventRepository,
	gateway PaymentGateway,
	notifier Notifier,
	cfg *config.Config,
	logger *slog.Logger,
) *CallbackUseCase {
	return &CallbackUseCase{
		orders:   orders,
		invoices: invoices,
		events:   events,
		gateway:  gateway,
		notifier: notifier,
		siteURL:  cfg.SiteURL,
		logger:   logger,
		now:      time.Now,
	}
}

// HandleOrderPayment verifies the callback, advances the order and returns the acknowledgment body.
func (u *CallbackUseCase) HandleOrderPayment(ctx context.Context, fields map[string]string) (string, error) {
	cb, err := u.verify(ctx, model.PaymentKindOrder, fields)
	if err != nil {
		return "", err
	}

	var kind model.NotificationKind
	order, err := u.orders.Update(ctx, cb.OrderID, func(o *model.Order) (bool, error) {
		var applied bool
		kind, applied = ApplyOrderPayment(o, cb.InvID, u.now())
		return applied, nil
	})
	if err != nil {
		u.record(ctx, model.PaymentKindOrder, cb, true, outcomeFor(err))
		if errors.Is(err, domainErrors.ErrNotFound) {
			return "", err
		}
		return "", errors.Wrap(err, "apply order payment")
	}

	if kind == "" {
		u.logger.Info("duplicate order callback",
			slog.String("order", order.ID),
			slog.Int64("inv_id", cb.InvID),
			slog.String("status", string(order.Status)),
		)
		u.record(ctx, model.PaymentKindOrder, cb, true, model.CallbackOutcomeDuplicate)
		return robokassa.Ack(cb.InvID), nil
	}

	u.record(ctx, model.PaymentKindOrder, cb, true, model.CallbackOutcomeApplied)

	n := orderNotification(kind, order, order.Remaining())
	if paid, err := decimal.NewFromString(cb.OutSum); err == nil {
		n.Amount = paid
	}
	if kind == model.NotificationPrepaymentReceived {
		n.PayRemainingURL = PayRemainingURL(u.siteURL, order.ID)
	}
	notifyBestEffort(ctx, u.notifier, u.logger, n)

	return robokassa.Ack(cb.InvID), nil
}

// HandleInvoicePayment verifies the callback and marks the additional invoice paid.
func (u *CallbackUseCase) HandleInvoicePayment(ctx context.Context, fields map[string]string) (string, error) {
	cb, err := u.verify(ctx, model.PaymentKindInvoice, fields)
	if err != nil {
		return "", err
	}

	var applied bool
	invoice, err := u.invoices.Update(ctx, cb.OrderID, func(inv *model.AdditionalInvoice) (bool, error) {
		applied = ApplyInvoicePayment(inv, u.now())
		return applied, nil
	})
	if err != nil {
		u.record(ctx, model.PaymentKindInvoice, cb, true, outcomeFor(err))
		if errors.Is(err, domainErrors.ErrNotFound) {
			return "", err
		}
		return "", errors.Wrap(err, "apply invoice payment")
	}
	if invoice.InvID != cb.InvID {
		u.logger.Warn("invoice callback inv id differs from issued",
			slog.String("invoice", invoice.ID),
			slog.Int64("inv_id", cb.InvID),
			slog.Int64("issued_inv_id", invoice.InvID),
		)
	}

	if !applied {
		u.record(ctx, model.PaymentKindInvoice, cb, true, model.CallbackOutcomeDuplicate)
		return robokassa.Ack(cb.InvID), nil
	}
	u.record(ctx, model.PaymentKindInvoice, cb, true, model.CallbackOutcomeApplied)

	n := model.Notification{
		Kind:          model.NotificationInvoicePaid,
		OrderID:       invoice.OrderID,
		InvoiceID:     invoice.ID,
		InvoiceNumber: invoice.InvoiceNumber,
		Amount:        invoice.Amount,
		Message:       invoice.Description,
	}
	if order, err := u.orders.GetByID(ctx, invoice.OrderID); err == nil {
		n.ClientName = order.Name
		n.Email = order.Email
		n.Phone = order.Phone
	}
	notifyBestEffort(ctx, u.notifier, u.logger, n)

	return robokassa.Ack(cb.InvID), nil
}

func (u *CallbackUseCase) verify(ctx context.Context, kind model.PaymentKind, fields map[string]string) (robokassa.Callback, error) {
	cb, err := robokassa.ParseCallback(fields)
	if err != nil {
		u.logger.Warn("malformed gateway callback", slog.String("kind", string(kind)), slog.String("error", err.Error()))
		u.record(ctx, kind, robokassa.Callback{Fields: fields, OrderID: fields["shp_orderId"], OutSum: fields["OutSum"]}, false, model.CallbackOutcomeBadSign)
		return robokassa.Callback{}, domainErrors.ErrBadSignature
	}
	if !u.gateway.VerifyCallback(cb) {
		u.logger.Warn("gateway callback signature mismatch",
			slog.String("kind", string(kind)),
			slog.Int64("inv_id", cb.InvID),
			slog.String("target", cb.OrderID),
		)
		u.record(ctx, kind, cb, false, model.CallbackOutcomeBadSign)
		return robokassa.Callback{}, domainErrors.ErrBadSignature
	}
	return cb, nil
}

func (u *CallbackUseCase) record(ctx context.Context, kind model.PaymentKind, cb robokassa.Callback, valid bool, outcome model.CallbackOutcome) {
	event := &model.PaymentEvent{
		Kind:           kind,
		InvID:          cb.InvID,
		TargetID:       cb.OrderID,
		OutSum:         cb.OutSum,
		SignatureValid: valid,
		Outcome:        outcome,
		Payload:        cb.Fields,
	}
	if err := u.events.Record(ctx, event); err != nil {
		u.logger.Error("record payment event failed",
			slog.String("target", cb.OrderID),
			slog.String("outcome", string(outcome)),
			slog.String("error", err.Error()),
		)
	}
}

func outcomeFor(err error) model.CallbackOutcome {
	if errors.Is(err, domainErrors.ErrNotFound) {
		return model.CallbackOutcomeNotFound
	}
	return model.CallbackOutcomeError
}
