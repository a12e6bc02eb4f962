// Package error defines domain-specific errors for the Business Manager application.
package error

import "errors"

// Calendar domain errors.
var (
	// ErrCalendarEntryNotFound is returned when a calendar entry is not found.
	ErrCalendarEntryNotFound = errors.New("calendar entry not found")

	// ErrCalendarTitleRequired is returned when the entry title is missing.
	ErrCalendarTitleRequired = errors.New("calendar entry title is required")

	// ErrInvalidCalendarDate is returned when the entry date is not YYYY-MM-DD.
	ErrInvalidCalendarDate = errors.New("invalid calendar date")
)

// CalendarErrorCode defines error codes for calendar errors.
// Format: CAL-XXYYYY where XX is category and YYYY is specific error.
type CalendarErrorCode string

const (
	ErrCodeCalendarTitleRequired CalendarErrorCode = "CAL-010001"
	ErrCodeInvalidCalendarDate   CalendarErrorCode = "CAL-010002"
	ErrCodeCalendarEntryNotFound CalendarErrorCode = "CAL-020001"
)

// CalendarError represents a calendar error with code and message.
type CalendarError struct {
	Code    CalendarErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CalendarError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CalendarError) Unwrap() error {
	return e.Err
}

// NewCalendarError creates a new CalendarError with the given code and message.
func NewCalendarError(code CalendarErrorCode, message string, err error) *CalendarError {
	return &CalendarError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
