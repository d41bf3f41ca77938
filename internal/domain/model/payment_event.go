package model

import "time"

// PaymentKind distinguishes order and additional invoice payments.
type PaymentKind string

const (
	PaymentKindOrder   PaymentKind = "order"
	PaymentKindInvoice PaymentKind = "invoice"
)

// CallbackOutcome records how a gateway callback was handled.
type CallbackOutcome string

const (
	CallbackOutcomeApplied   CallbackOutcome = "applied"
	CallbackOutcomeDuplicate CallbackOutcome = "duplicate"
	CallbackOutcomeBadSign   CallbackOutcome = "bad_sign"
	CallbackOutcomeNotFound  CallbackOutcome = "not_found"
	CallbackOutcomeError     CallbackOutcome = "error"
)

// PaymentEvent is an audit record of a received gateway callback.
type PaymentEvent struct {
	ID             int64
	Kind           PaymentKind
	InvID          int64
	TargetID       string
	OutSum         string
	SignatureValid bool
	Outcome        CallbackOutcome
	Payload        map[string]string
	ReceivedAt     time.Time
}
