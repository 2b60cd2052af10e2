// Package payment wraps the external payment provider behind a narrow
// synchronous charge interface. The provider's retry and settlement logic is
// its own business; this core only needs authorized-or-failed.
package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// ChargeRequest describes one charge attempt. IdempotencyKey is stable per
// checkout session so a retried completion cannot double-charge.
type ChargeRequest struct {
	Amount          decimal.Decimal
	Currency        string
	PaymentMethodId string
	Description     string
	IdempotencyKey  string
	Metadata        map[string]interface{}
}

// ChargeResult is the provider's acknowledgment of a successful charge.
type ChargeResult struct {
	TransactionId string
	Status        string
	RawResponse   []byte
}

// Error is returned when the provider declines or the call times out. The
// message is safe to surface to the requester.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Gateway authorizes charges against the external payment provider. Charge is
// the only operation in the checkout core with externally-variable latency,
// so implementations must honor the context deadline.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}
