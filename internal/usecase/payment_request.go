package usecase

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/polkiloo/webstudio/internal/domain/repository"
	"github.com/polkiloo/webstudio/internal/pkg/robokassa"
)

// PaymentGateway signs outgoing payment links and verifies incoming callbacks.
type PaymentGateway interface {
	PaymentURL(req robokassa.PaymentRequest) (string, error)
	VerifyCallback(cb robokassa.Callback) bool
}

// PaymentLink is a signed redirect to the gateway.
type PaymentLink struct {
	InvID int64
	URL   string
}

// PaymentRequestBuilder issues invoice ids and composes gateway links. It performs no network I/O.
type PaymentRequestBuilder struct {
	sequence repository.InvoiceSequence
	gateway  PaymentGateway
}

// NewPaymentRequestBuilder constructs PaymentRequestBuilder.
func NewPaymentRequestBuilder(sequence repository.InvoiceSequence, gateway PaymentGateway) *PaymentRequestBuilder {
	return &PaymentRequestBuilder{sequence: sequence, gateway: gateway}
}

// Build draws a fresh InvId and signs a payment link for targetID.
func (b *PaymentRequestBuilder) Build(ctx context.Context, amount decimal.Decimal, description, targetID string) (*PaymentLink, error) {
	invID, err := b.sequence.Next(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "issue invoice id")
	}

	url, err := b.gateway.PaymentURL(robokassa.PaymentRequest{
		Amount:      amount,
		InvID:       invID,
		Description: description,
		OrderID:     targetID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "build payment url")
	}

	return &PaymentLink{InvID: invID, URL: url}, nil
}
