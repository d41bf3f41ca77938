package usecase

import (
	"time"

	domainErrors "github.com/polkiloo/webstudio/internal/domain/errors"
	"github.com/polkiloo/webstudio/internal/domain/model"
)

// ApplyOrderPayment advances the order after a verified gateway payment.
// It returns the notification to emit and false when the payment was already applied
// or the order is completed. Status never moves backwards.
func ApplyOrderPayment(order *model.Order, invID int64, now time.Time) (model.NotificationKind, bool) {
	if order.HandledInvoice(invID) {
		return "", false
	}

	paidAt := now
	switch order.Status {
	case model.OrderStatusPending, model.OrderStatusPendingBankPayment:
		order.Status = model.OrderStatusPaid
		order.PaidAt = &paidAt
		order.PrepaymentPaidAt = &paidAt
		order.PrepaymentInvID = &invID
		return model.NotificationPrepaymentReceived, true
	case model.OrderStatusPaid:
		order.Status = model.OrderStatusCompleted
		order.PaidAt = &paidAt
		order.RemainingPaidAt = &paidAt
		order.RemainingInvID = &invID
		return model.NotificationOrderFullyPaid, true
	default:
		return "", false
	}
}

// ApplyInvoicePayment marks a pending invoice paid. Repeats are no-ops.
func ApplyInvoicePayment(invoice *model.AdditionalInvoice, now time.Time) bool {
	if invoice.Status == model.InvoiceStatusPaid {
		return false
	}
	paidAt := now
	invoice.Status = model.InvoiceStatusPaid
	invoice.PaidAt = &paidAt
	return true
}

// CheckPayRemaining reports whether the remaining balance may be requested now.
func CheckPayRemaining(order *model.Order) error {
	switch order.Status {
	case model.OrderStatusPaid:
	case model.OrderStatusCompleted:
		return domainErrors.ErrFullyPaid
	default:
		return domainErrors.ErrPrepaymentNotConfirmed
	}
	if !order.Remaining().IsPositive() {
		return domainErrors.ErrRemainingNotAvailable
	}
	return nil
}
