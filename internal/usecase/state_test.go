package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/polkiloo/webstudio/internal/domain/errors"
	"github.com/polkiloo/webstudio/internal/domain/model"
	"github.com/polkiloo/webstudio/internal/usecase"
)

func newOrder(status model.OrderStatus) *model.Order {
	return &model.Order{
		ID:          "ord",
		Amount:      decimal.NewFromInt(100),
		TotalAmount: decimal.NewNullDecimal(decimal.NewFromInt(200)),
		Status:      status,
	}
}

func TestApplyOrderPayment(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("pending to paid", func(t *testing.T) {
		order := newOrder(model.OrderStatusPending)
		kind, applied := usecase.ApplyOrderPayment(order, 1, now)
		require.True(t, applied)
		assert.Equal(t, model.NotificationPrepaymentReceived, kind)
		assert.Equal(t, model.OrderStatusPaid, order.Status)
		assert.Equal(t, now, *order.PrepaymentPaidAt)
		assert.Equal(t, now, *order.PaidAt)
		assert.Equal(t, int64(1), *order.PrepaymentInvID)
	})

	t.Run("bank payment to paid", func(t *testing.T) {
		order := newOrder(model.OrderStatusPendingBankPayment)
		kind, applied := usecase.ApplyOrderPayment(order, 1, now)
		require.True(t, applied)
		assert.Equal(t, model.NotificationPrepaymentReceived, kind)
		assert.Equal(t, model.OrderStatusPaid, order.Status)
	})

	t.Run("paid to completed", func(t *testing.T) {
		order := newOrder(model.OrderStatusPending)
		usecase.ApplyOrderPayment(order, 1, now)
		later := now.Add(time.Hour)

		kind, applied := usecase.ApplyOrderPayment(order, 2, later)
		require.True(t, applied)
		assert.Equal(t, model.NotificationOrderFullyPaid, kind)
		assert.Equal(t, model.OrderStatusCompleted, order.Status)
		assert.Equal(t, now, *order.PrepaymentPaidAt)
		assert.Equal(t, later, *order.RemainingPaidAt)
		assert.Equal(t, later, *order.PaidAt)
	})

	t.Run("same invoice twice", func(t *testing.T) {
		order := newOrder(model.OrderStatusPending)
		usecase.ApplyOrderPayment(order, 1, now)

		_, applied := usecase.ApplyOrderPayment(order, 1, now)
		assert.False(t, applied)
		assert.Equal(t, model.OrderStatusPaid, order.Status)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		order := newOrder(model.OrderStatusPending)
		usecase.ApplyOrderPayment(order, 1, now)
		completedAt := now.Add(time.Hour)
		usecase.ApplyOrderPayment(order, 2, completedAt)

		for _, invID := range []int64{2, 9} {
			kind, applied := usecase.ApplyOrderPayment(order, invID, completedAt.Add(time.Hour))
			assert.False(t, applied)
			assert.Empty(t, kind)
			assert.Equal(t, model.OrderStatusCompleted, order.Status)
			assert.Equal(t, completedAt, *order.PaidAt)
			assert.Equal(t, completedAt, *order.RemainingPaidAt)
			assert.Equal(t, now, *order.PrepaymentPaidAt)
		}
	})
}

func TestApplyInvoicePayment(t *testing.T) {
	now := time.Now()
	inv := &model.AdditionalInvoice{Status: model.InvoiceStatusPending}

	require.True(t, usecase.ApplyInvoicePayment(inv, now))
	assert.Equal(t, model.InvoiceStatusPaid, inv.Status)
	assert.Equal(t, now, *inv.PaidAt)

	assert.False(t, usecase.ApplyInvoicePayment(inv, now.Add(time.Minute)))
	assert.Equal(t, now, *inv.PaidAt)
}

func TestCheckPayRemaining(t *testing.T) {
	assert.ErrorIs(t, usecase.CheckPayRemaining(newOrder(model.OrderStatusPending)), domainErrors.ErrPrepaymentNotConfirmed)
	assert.ErrorIs(t, usecase.CheckPayRemaining(newOrder(model.OrderStatusPendingBankPayment)), domainErrors.ErrPrepaymentNotConfirmed)
	assert.ErrorIs(t, usecase.CheckPayRemaining(newOrder(model.OrderStatusCompleted)), domainErrors.ErrFullyPaid)
	assert.NoError(t, usecase.CheckPayRemaining(newOrder(model.OrderStatusPaid)))

	settled := newOrder(model.OrderStatusPaid)
	settled.TotalAmount = decimal.NewNullDecimal(settled.Amount)
	assert.ErrorIs(t, usecase.CheckPayRemaining(settled), domainErrors.ErrRemainingNotAvailable)
}
