package repository

import (
	"context"

	"github.com/polkiloo/webstudio/internal/domain/model"
)

// InvoiceMutation changes a locked invoice in place and reports whether it must be persisted.
type InvoiceMutation func(invoice *model.AdditionalInvoice) (bool, error)

// InvoiceRepository stores additional invoices.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *model.AdditionalInvoice) error
	GetByID(ctx context.Context, id string) (*model.AdditionalInvoice, error)
	ListByOrder(ctx context.Context, orderID string) ([]model.AdditionalInvoice, error)
	Update(ctx context.Context, id string, mutate InvoiceMutation) (*model.AdditionalInvoice, error)
}
