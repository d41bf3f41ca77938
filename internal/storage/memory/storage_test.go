package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/polkiloo/webstudio/internal/domain/errors"
	"github.com/polkiloo/webstudio/internal/domain/model"
	"github.com/polkiloo/webstudio/internal/domain/repository"
)

func newOrder(id string) *model.Order {
	return &model.Order{
		ID:            id,
		Name:          "Ivan",
		Email:         "ivan@example.com",
		Phone:         "+79990000000",
		ProjectType:   model.ProjectTypeShop,
		Amount:        decimal.RequireFromString("5000"),
		PaymentMethod: model.PaymentMethodCard,
		Status:        model.OrderStatusPending,
	}
}

func TestOrderRepository(t *testing.T) {
	ctx := context.Background()
	st := New()
	repo := st.Orders()

	require.NoError(t, repo.Create(ctx, newOrder("a")))
	require.NoError(t, repo.Create(ctx, newOrder("b")))
	assert.ErrorIs(t, repo.Create(ctx, newOrder("a")), domainErrors.ErrAlreadyExists)

	got, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.False(t, got.CreatedAt.IsZero())

	got.Status = model.OrderStatusCompleted
	again, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, again.Status, "returned copies must not alias stored orders")

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)

	updated, err := repo.Update(ctx, "b", func(o *model.Order) (bool, error) {
		o.Status = model.OrderStatusPaid
		return true, nil
	})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPaid, updated.Status)

	_, err = repo.Update(ctx, "b", func(o *model.Order) (bool, error) {
		o.Status = model.OrderStatusCompleted
		return false, domainErrors.ErrFullyPaid
	})
	assert.ErrorIs(t, err, domainErrors.ErrFullyPaid)
	stored, err := repo.GetByID(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPaid, stored.Status, "failed mutation must not persist")

	_, err = repo.Update(ctx, "missing", func(*model.Order) (bool, error) { return true, nil })
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)

	paid, err := repo.List(ctx, repository.OrderFilter{Status: model.OrderStatusPaid})
	require.NoError(t, err)
	require.Len(t, paid, 1)
	assert.Equal(t, "b", paid[0].ID)

	_, err = repo.Update(ctx, "a", func(o *model.Order) (bool, error) {
		now := o.CreatedAt
		o.DeletedAt = &now
		return true, nil
	})
	require.NoError(t, err)

	visible, err := repo.List(ctx, repository.OrderFilter{})
	require.NoError(t, err)
	assert.Len(t, visible, 1)

	all, err := repo.List(ctx, repository.OrderFilter{IncludeDeleted: true, Limit: 1})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestOrderRepositoryConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	repo := New().Orders()
	require.NoError(t, repo.Create(ctx, newOrder("a")))

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		applied int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Update(ctx, "a", func(o *model.Order) (bool, error) {
				if o.Status != model.OrderStatusPending {
					return false, nil
				}
				o.Status = model.OrderStatusPaid
				mu.Lock()
				applied++
				mu.Unlock()
				return true, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, applied)
}

func TestInvoiceRepository(t *testing.T) {
	ctx := context.Background()
	repo := New().Invoices()

	inv := &model.AdditionalInvoice{ID: "i1", OrderID: "a", Amount: decimal.RequireFromString("100"), Status: model.InvoiceStatusPending, InvID: 5}
	require.NoError(t, repo.Create(ctx, inv))
	assert.ErrorIs(t, repo.Create(ctx, &model.AdditionalInvoice{ID: "i2", OrderID: "a", InvID: 5}), domainErrors.ErrAlreadyExists)
	require.NoError(t, repo.Create(ctx, &model.AdditionalInvoice{ID: "i3", OrderID: "b", InvID: 6}))

	list, err := repo.ListByOrder(ctx, "a")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "i1", list[0].ID)

	updated, err := repo.Update(ctx, "i1", func(i *model.AdditionalInvoice) (bool, error) {
		i.Status = model.InvoiceStatusPaid
		return true, nil
	})
	require.NoError(t, err)
	assert.Equal(t, model.InvoiceStatusPaid, updated.Status)

	got, err := repo.GetByID(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, model.InvoiceStatusPaid, got.Status)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
	_, err = repo.Update(ctx, "missing", func(*model.AdditionalInvoice) (bool, error) { return true, nil })
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
}

func TestInvoiceSequenceIsUnique(t *testing.T) {
	seq := New().Sequence()
	seen := make(map[int64]struct{})
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := seq.Next(context.Background())
			assert.NoError(t, err)
			mu.Lock()
			seen[id] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, 100)
}

func TestPaymentEventRepository(t *testing.T) {
	ctx := context.Background()
	st := New()
	repo := st.PaymentEvents()

	require.NoError(t, repo.Record(ctx, &model.PaymentEvent{TargetID: "a", Outcome: model.CallbackOutcomeApplied}))
	require.NoError(t, repo.Record(ctx, &model.PaymentEvent{TargetID: "b", Outcome: model.CallbackOutcomeBadSign}))
	require.NoError(t, repo.Record(ctx, &model.PaymentEvent{TargetID: "a", Outcome: model.CallbackOutcomeDuplicate}))

	events, err := repo.ListByTarget(ctx, "a")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, model.CallbackOutcomeDuplicate, events[1].Outcome)
	assert.NotZero(t, events[0].ID)

	assert.NoError(t, st.HealthCheck(ctx))
	st.Close()
}
