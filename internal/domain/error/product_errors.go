// Package error defines domain-specific errors for the Business Manager application.
package error

import "errors"

// Product domain errors.
var (
	// ErrProductNotFound is returned when a product is not found in the system.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductNameRequired is returned when the product name is missing.
	ErrProductNameRequired = errors.New("product name is required")

	// ErrProductInUse is returned when deleting a product that clients still reference.
	ErrProductInUse = errors.New("product is referenced by client subscriptions")

	// ErrNotAuthorizedToModifyProduct is returned when the product belongs to another user.
	ErrNotAuthorizedToModifyProduct = errors.New("not authorized to modify product")

	// ErrProductNameTaken is returned when the user already has a product with the same name.
	ErrProductNameTaken = errors.New("product name already in use")
)

// ProductErrorCode defines error codes for product errors.
// Format: PRD-XXYYYY where XX is category and YYYY is specific error.
type ProductErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeProductNameRequired ProductErrorCode = "PRD-010001"
	ErrCodeInvalidProductFee   ProductErrorCode = "PRD-010002"
	ErrCodeProductNameTaken    ProductErrorCode = "PRD-010003"

	// Lookup / ownership errors (02XXXX)
	ErrCodeProductNotFound      ProductErrorCode = "PRD-020001"
	ErrCodeNotAuthorizedProduct ProductErrorCode = "PRD-020002"

	// Referential integrity errors (03XXXX)
	ErrCodeProductInUse ProductErrorCode = "PRD-030001"
)

// ProductError represents a product error with code and message.
// BlockingClients carries the count of clients preventing a delete.
type ProductError struct {
	Code            ProductErrorCode
	Message         string
	Err             error
	BlockingClients int
}

// Error implements the error interface.
func (e *ProductError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProductError) Unwrap() error {
	return e.Err
}

// NewProductError creates a new ProductError with the given code and message.
func NewProductError(code ProductErrorCode, message string, err error) *ProductError {
	return &ProductError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewProductInUseError creates the referential-integrity error raised when a
// delete is blocked by existing client subscriptions.
func NewProductInUseError(message string, blockingClients int) *ProductError {
	return &ProductError{
		Code:            ErrCodeProductInUse,
		Message:         message,
		Err:             ErrProductInUse,
		BlockingClients: blockingClients,
	}
}
