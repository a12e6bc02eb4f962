// Package error defines domain-specific errors for the Business Manager application.
package error

import "errors"

// Client domain errors.
var (
	// ErrClientNotFound is returned when a client is not found in the system.
	ErrClientNotFound = errors.New("client not found")

	// ErrClientNameRequired is returned when the client name is missing.
	ErrClientNameRequired = errors.New("client name is required")

	// ErrInvalidDueDay is returned when the due day is outside [1,31].
	ErrInvalidDueDay = errors.New("due day must be between 1 and 31")

	// ErrNoBillableSubscription is returned when no subscription carries a positive amount.
	ErrNoBillableSubscription = errors.New("client needs at least one billable subscription")

	// ErrSubscriptionNotFound is returned when a subscription index is out of range.
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrInvalidChargeStatus is returned when a charge status value is not valid for the charge kind.
	ErrInvalidChargeStatus = errors.New("invalid charge status")

	// ErrNotAuthorizedToModifyClient is returned when the client belongs to another user.
	ErrNotAuthorizedToModifyClient = errors.New("not authorized to modify client")
)

// ClientErrorCode defines error codes for client errors.
// Format: CLI-XXYYYY where XX is category and YYYY is specific error.
type ClientErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeClientNameRequired      ClientErrorCode = "CLI-010001"
	ErrCodeInvalidDueDay           ClientErrorCode = "CLI-010002"
	ErrCodeNoBillableSubscription  ClientErrorCode = "CLI-010003"
	ErrCodeInvalidChargeStatus     ClientErrorCode = "CLI-010004"
	ErrCodeMissingClientFields     ClientErrorCode = "CLI-010005"

	// Lookup / ownership errors (02XXXX)
	ErrCodeClientNotFound       ClientErrorCode = "CLI-020001"
	ErrCodeSubscriptionNotFound ClientErrorCode = "CLI-020002"
	ErrCodeNotAuthorizedClient  ClientErrorCode = "CLI-020003"
)

// ClientError represents a client error with code and message.
type ClientError struct {
	Code    ClientErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ClientError) Unwrap() error {
	return e.Err
}

// NewClientError creates a new ClientError with the given code and message.
func NewClientError(code ClientErrorCode, message string, err error) *ClientError {
	return &ClientError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
