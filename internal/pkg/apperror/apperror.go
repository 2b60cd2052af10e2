// Package apperror defines the error taxonomy surfaced by the checkout and
// subscription services. Every error here is recoverable by the caller; the
// HTTP layer maps kinds to status codes in one place.
package apperror

import "fmt"

type Kind string

const (
	KindNotFound      Kind = "not_found"
	KindForbidden     Kind = "forbidden"
	KindConflict      Kind = "conflict"
	KindExpired       Kind = "expired"
	KindValidation    Kind = "validation"
	KindPaymentFailed Kind = "payment_failed"
)

type AppError struct {
	Kind    Kind
	Message string
	// Reason carries a machine-readable detail code, e.g. a promo rejection
	// reason, alongside the human-readable message.
	Reason string
	Err    error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Forbidden(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func Expired(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindExpired, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// ValidationReason builds a validation error carrying a machine-readable
// reason code for the client.
func ValidationReason(reason, message string) *AppError {
	return &AppError{Kind: KindValidation, Reason: reason, Message: message}
}

func PaymentFailed(message string, cause error) *AppError {
	return &AppError{Kind: KindPaymentFailed, Message: message, Err: cause}
}
