package memory

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	domainErrors "github.com/polkiloo/webstudio/internal/domain/errors"
	"github.com/polkiloo/webstudio/internal/domain/model"
	"github.com/polkiloo/webstudio/internal/domain/repository"
)

// Storage keeps all repositories in process memory. Data is lost on restart.
type Storage struct {
	orders   *orderRepository
	invoices *invoiceRepository
	sequence *invoiceSequence
	events   *paymentEventRepository
}

var _ repository.Factory = (*Storage)(nil)

// New creates empty in-memory storage.
func New() *Storage {
	return &Storage{
		orders:   &orderRepository{m: make(map[string]*model.Order)},
		invoices: &invoiceRepository{m: make(map[string]*model.AdditionalInvoice), byInvID: make(map[int64]string)},
		sequence: &invoiceSequence{},
		events:   &paymentEventRepository{},
	}
}

func (s *Storage) Orders() repository.OrderRepository               { return s.orders }
func (s *Storage) Invoices() repository.InvoiceRepository           { return s.invoices }
func (s *Storage) Sequence() repository.InvoiceSequence             { return s.sequence }
func (s *Storage) PaymentEvents() repository.PaymentEventRepository { return s.events }

// HealthCheck always succeeds.
func (s *Storage) HealthCheck(context.Context) error { return nil }

// Close is a no-op.
func (s *Storage) Close() {}

type orderRepository struct {
	mu sync.RWMutex
	m  map[string]*model.Order
}

func (r *orderRepository) Create(_ context.Context, order *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.m[order.ID]; ok {
		return domainErrors.ErrAlreadyExists
	}
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	stored := *order
	r.m[order.ID] = &stored
	return nil
}

func (r *orderRepository) GetByID(_ context.Context, id string) (*model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.m[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	c := *o
	return &c, nil
}

func (r *orderRepository) List(_ context.Context, filter repository.OrderFilter) ([]model.Order, error) {
	r.mu.RLock()
	all := make([]model.Order, 0, len(r.m))
	for _, o := range r.m {
		if !filter.IncludeDeleted && o.Deleted() {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		all = append(all, *o)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if filter.Limit > 0 && len(all) > filter.Limit {
		all = all[:filter.Limit]
	}
	return all, nil
}

// Update runs mutate under the write lock, so callbacks for one order never interleave.
func (r *orderRepository) Update(_ context.Context, id string, mutate repository.OrderMutation) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.m[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	c := *o
	changed, err := mutate(&c)
	if err != nil {
		return nil, err
	}
	if changed {
		c.UpdatedAt = time.Now()
		stored := c
		r.m[id] = &stored
	}
	return &c, nil
}

type invoiceRepository struct {
	mu      sync.RWMutex
	m       map[string]*model.AdditionalInvoice
	byInvID map[int64]string
}

func (r *invoiceRepository) Create(_ context.Context, invoice *model.AdditionalInvoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.m[invoice.ID]; ok {
		return domainErrors.ErrAlreadyExists
	}
	if _, ok := r.byInvID[invoice.InvID]; ok {
		return domainErrors.ErrAlreadyExists
	}
	invoice.CreatedAt = time.Now()
	stored := *invoice
	r.m[invoice.ID] = &stored
	r.byInvID[invoice.InvID] = invoice.ID
	return nil
}

func (r *invoiceRepository) GetByID(_ context.Context, id string) (*model.AdditionalInvoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inv, ok := r.m[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	c := *inv
	return &c, nil
}

func (r *invoiceRepository) ListByOrder(_ context.Context, orderID string) ([]model.AdditionalInvoice, error) {
	r.mu.RLock()
	var result []model.AdditionalInvoice
	for _, inv := range r.m {
		if inv.OrderID == orderID {
			result = append(result, *inv)
		}
	}
	r.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (r *invoiceRepository) Update(_ context.Context, id string, mutate repository.InvoiceMutation) (*model.AdditionalInvoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.m[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	c := *inv
	changed, err := mutate(&c)
	if err != nil {
		return nil, err
	}
	if changed {
		stored := c
		r.m[id] = &stored
	}
	return &c, nil
}

type invoiceSequence struct {
	last atomic.Int64
}

func (s *invoiceSequence) Next(context.Context) (int64, error) {
	return s.last.Add(1), nil
}

type paymentEventRepository struct {
	mu     sync.RWMutex
	events []model.PaymentEvent
}

func (r *paymentEventRepository) Record(_ context.Context, event *model.PaymentEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	event.ID = int64(len(r.events) + 1)
	event.ReceivedAt = time.Now()
	r.events = append(r.events, *event)
	return nil
}

func (r *paymentEventRepository) ListByTarget(_ context.Context, targetID string) ([]model.PaymentEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []model.PaymentEvent
	for _, e := range r.events {
		if e.TargetID == targetID {
			result = append(result, e)
		}
	}
	return result, nil
}
