package repository

import "context"

// InvoiceSequence issues gateway invoice identifiers.
// Values are strictly increasing, start at 1 and never repeat across callers.
type InvoiceSequence interface {
	Next(ctx context.Context) (int64, error)
}
