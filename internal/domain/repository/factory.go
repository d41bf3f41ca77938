package repository

import "context"

// Factory describes access to different domain repositories.
type Factory interface {
	Orders() OrderRepository
	Invoices() InvoiceRepository
	Sequence() InvoiceSequence
	PaymentEvents() PaymentEventRepository
	HealthCheck(ctx context.Context) error
	Close()
}
