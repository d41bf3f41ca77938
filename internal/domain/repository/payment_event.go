package repository

import (
	"context"

	"github.com/polkiloo/webstudio/internal/domain/model"
)

// PaymentEventRepository keeps the audit trail of gateway callbacks.
type PaymentEventRepository interface {
	Record(ctx context.Context, event *model.PaymentEvent) error
	ListByTarget(ctx context.Context, targetID string) ([]model.PaymentEvent, error)
}
