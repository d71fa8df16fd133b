package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	NotFoundError     ErrorType = "not_found"
	DuplicateKeyError ErrorType = "duplicate_key"
	InvalidValueError ErrorType = "invalid_value"
	ConstraintError   ErrorType = "constraint"
	LockError         ErrorType = "lock"
	TransientError    ErrorType = "transient"
	ConnectionError   ErrorType = "connection"
)

// ErrorClassifier provides methods to classify database errors.
// Postgres SQLSTATE codes are preferred; message matching covers errors raised before a server reply.
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	if err == nil {
		return ""
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFoundError
	}
	if c.IsDuplicateKeyError(err) {
		return DuplicateKeyError
	}
	if c.IsInvalidValueError(err) {
		return InvalidValueError
	}
	if c.IsConstraintError(err) {
		return ConstraintError
	}
	if c.IsLockError(err) {
		return LockError
	}
	if c.IsTransientError(err) {
		return TransientError
	}
	if c.IsConnectionError(err) {
		return ConnectionError
	}

	return ""
}

// IsDuplicateKeyError checks if the error is a duplicate key error
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if code, ok := sqlState(err); ok {
		return code == "23505"
	}
	return containsAny(err, "duplicate key", "UNIQUE constraint")
}

// IsInvalidValueError checks if a column rejected the value, e.g. an unknown enum label
// or a title longer than the column allows
func (c *ErrorClassifier) IsInvalidValueError(err error) bool {
	if code, ok := sqlState(err); ok {
		switch code {
		case "22P02", "22001", "22003", "22007", "22008":
			return true
		}
		return false
	}
	return containsAny(err, "invalid input value for enum", "value too long", "out of range")
}

// IsConstraintError checks if the error is related to constraint violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if code, ok := sqlState(err); ok {
		return strings.HasPrefix(code, "23")
	}
	return containsAny(err, "violates", "constraint", "not null")
}

// IsLockError checks if the error is due to locking
func (c *ErrorClassifier) IsLockError(err error) bool {
	if code, ok := sqlState(err); ok {
		return code == "40001" || code == "40P01" || code == "55P03"
	}
	return containsAny(err, "deadlock", "could not serialize access", "lock timeout")
}

// IsTransientError checks if an error is transient and can be retried
func (c *ErrorClassifier) IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if code, ok := sqlState(err); ok {
		return code == "57014" || code == "57P01" || code == "53300" || strings.HasPrefix(code, "08")
	}
	return containsAny(err,
		"connection reset",
		"connection refused",
		"timeout",
		"EOF",
		"server closed",
		"broken pipe",
		"too many clients",
	)
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if code, ok := sqlState(err); ok {
		return strings.HasPrefix(code, "08")
	}
	return containsAny(err, "connection", "dial", "network") || c.IsTransientError(err)
}

func sqlState(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, true
	}
	return "", false
}

func containsAny(err error, fragments ...string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, f := range fragments {
		if strings.Contains(msg, f) {
			return true
		}
	}
	return false
}
