// Package error defines domain-specific errors for the Business Manager application.
package error

import "errors"

// Billing domain errors.
var (
	// ErrInvalidPeriod is returned when the requested month/year is out of range.
	ErrInvalidPeriod = errors.New("invalid billing period")

	// ErrClientHasNoEmail is returned when queueing a reminder for a client without an email.
	ErrClientHasNoEmail = errors.New("client has no email address")
)

// BillingErrorCode defines error codes for billing errors.
// Format: BIL-XXYYYY where XX is category and YYYY is specific error.
type BillingErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPeriod     BillingErrorCode = "BIL-010001"
	ErrCodeClientHasNoEmail  BillingErrorCode = "BIL-010002"
	ErrCodeMissingChargeRef  BillingErrorCode = "BIL-010003"
)

// BillingError represents a billing error with code and message.
type BillingError struct {
	Code    BillingErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BillingError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BillingError) Unwrap() error {
	return e.Err
}

// NewBillingError creates a new BillingError with the given code and message.
func NewBillingError(code BillingErrorCode, message string, err error) *BillingError {
	return &BillingError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
