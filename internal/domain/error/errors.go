package error

import (
	"errors"
	"fmt"
	"net/http"
)

// User-facing messages rendered in the "detail" field of error responses
const (
	MessageMoneyFlowNotFound = "指定したIDが存在しません。"
	MessageInternalServer    = "システムエラーが発生しました"
)

// Base error types
var (
	// ErrMoneyFlowNotFound is returned when no money flow exists for the requested ID
	ErrMoneyFlowNotFound = errors.New("money flow not found")

	// ErrInvalidMoneyFlowID is returned when the money flow ID is not a positive integer
	ErrInvalidMoneyFlowID = errors.New("money flow ID must be positive")

	// ErrInvalidTitle is returned when the title is empty or blank
	ErrInvalidTitle = errors.New("title is required")

	// ErrTitleTooLong is returned when the title exceeds the maximum length
	ErrTitleTooLong = errors.New("title is too long")

	// ErrNegativeAmount is returned when the amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidOccurredDate is returned when the occurred date is missing
	ErrInvalidOccurredDate = errors.New("occurred date is required")

	// ErrInvalidKind is returned when the kind is not one of the allowed values
	ErrInvalidKind = errors.New("invalid money flow kind")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrCommitFailed is returned when the store rejects a commit
	ErrCommitFailed = errors.New("failed to commit changes")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// BusinessError is a deliberate, expected failure that is reported to the caller
// with a fixed status code and a user-facing message.
type BusinessError struct {
	Status  int
	Message string
	Err     error
}

// Error implements the error interface for BusinessError
func (e *BusinessError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap returns the underlying error
func (e *BusinessError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *BusinessError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "business_error",
		"status":     e.Status,
		"message":    e.Message,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewBusinessError creates a BusinessError reported as 422 Unprocessable Entity
func NewBusinessError(message string, cause error) *BusinessError {
	return &BusinessError{
		Status:  http.StatusUnprocessableEntity,
		Message: message,
		Err:     cause,
	}
}

// NewNotFoundError creates the BusinessError used for unknown money flow IDs
func NewNotFoundError(id uint64) *BusinessError {
	return NewBusinessError(MessageMoneyFlowNotFound, fmt.Errorf("%w: id=%d", ErrMoneyFlowNotFound, id))
}

// AsBusinessError reports whether err is or maps onto a BusinessError.
// Not-found and validation sentinels are converted; infrastructure errors are not.
func AsBusinessError(err error) (*BusinessError, bool) {
	if err == nil {
		return nil, false
	}

	var be *BusinessError
	if errors.As(err, &be) {
		return be, true
	}

	switch {
	case errors.Is(err, ErrMoneyFlowNotFound):
		return NewBusinessError(MessageMoneyFlowNotFound, err), true
	case IsValidationError(err):
		return NewBusinessError(err.Error(), err), true
	}

	return nil, false
}

// IsValidationError checks if the error is a field validation failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidMoneyFlowID) ||
		errors.Is(err, ErrInvalidTitle) ||
		errors.Is(err, ErrTitleTooLong) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrInvalidOccurredDate) ||
		errors.Is(err, ErrInvalidKind) ||
		errors.Is(err, ErrInvalidRequest)
}

// IsNotFoundError checks if the error is a money flow not found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrMoneyFlowNotFound)
}

// StatusCode returns the HTTP status used to report err
func StatusCode(err error) int {
	if be, ok := AsBusinessError(err); ok {
		return be.Status
	}
	return http.StatusInternalServerError
}
