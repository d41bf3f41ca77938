package test

import (
	"context"

	"github.com/polkiloo/webstudio/internal/domain/model"
	"github.com/polkiloo/webstudio/internal/domain/repository"
)

// OrderRepositoryStub wraps a real repository and injects failures.
type OrderRepositoryStub struct {
	repository.OrderRepository
	CreateErr error
	GetErr    error
	UpdateErr error
}

// Create fails with CreateErr when set.
func (s OrderRepositoryStub) Create(ctx context.Context, order *model.Order) error {
	if s.CreateErr != nil {
		return s.CreateErr
	}
	return s.OrderRepository.Create(ctx, order)
}

// GetByID fails with GetErr when set.
func (s OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	return s.OrderRepository.GetByID(ctx, id)
}

// Update fails with UpdateErr when set, without calling mutate.
func (s OrderRepositoryStub) Update(ctx context.Context, id string, mutate repository.OrderMutation) (*model.Order, error) {
	if s.UpdateErr != nil {
		return nil, s.UpdateErr
	}
	return s.OrderRepository.Update(ctx, id, mutate)
}

// SequenceStub returns scripted invoice ids.
type SequenceStub struct {
	Err  error
	Last int64
}

// Next increments Last unless Err is set.
func (s *SequenceStub) Next(context.Context) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.Last++
	return s.Last, nil
}

// PaymentEventRepositoryStub fails every write.
type PaymentEventRepositoryStub struct {
	Err error
}

// Record returns Err.
func (s PaymentEventRepositoryStub) Record(context.Context, *model.PaymentEvent) error {
	return s.Err
}

// ListByTarget returns no events.
func (s PaymentEventRepositoryStub) ListByTarget(context.Context, string) ([]model.PaymentEvent, error) {
	return nil, s.Err
}

var (
	_ repository.OrderRepository        = OrderRepositoryStub{}
	_ repository.InvoiceSequence        = (*SequenceStub)(nil)
	_ repository.PaymentEventRepository = PaymentEventRepositoryStub{}
)
