package client

import (
	"context"
	"errors"
	"strings"
)

// ErrPaymentLocationNotConfigured means the processor-side location id is
// absent from configuration. Callers report this as a server problem, not a
// client input problem.
var ErrPaymentLocationNotConfigured = errors.New("payment location is not configured")

type ChargeRequest struct {
	SourceID string
	Amount   int64 // minor currency units
	Currency string
}

type ChargeResult struct {
	PaymentID  string
	Status     string
	Amount     int64
	Currency   string
	ReceiptURL string
}

// ProcessorError carries the per-error detail messages reported by the
// payment processor for a rejected charge.
type ProcessorError struct {
	Details []string
}

func (e *ProcessorError) Error() string {
	if len(e.Details) == 0 {
		return "Payment failed"
	}
	return strings.Join(e.Details, ", ")
}

// PaymentClient submits tokenized card charges to a payment processor.
type PaymentClient interface {
	Charge(ctx context.Context, req *ChargeRequest) (*ChargeResult, error)
}
