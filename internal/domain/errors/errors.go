package errors

import (
	"sort"
	"strings"

	"github.com/go-faster/errors"
)

var (
	ErrAlreadyExists          = errors.New("already exists")
	ErrNotFound               = errors.New("not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrBadSignature           = errors.New("bad sign")
	ErrFullyPaid              = errors.New("order is already fully paid")
	ErrPrepaymentNotConfirmed = errors.New("prepayment is not confirmed yet")
	ErrRemainingNotAvailable  = errors.New("order has no remaining balance")
	ErrQueueFull              = errors.New("notification queue is full")
)

// ValidationError reports rejected input fields.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns nil when no field failed.
func NewValidationError(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
