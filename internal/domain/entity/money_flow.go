package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/money-flow-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/money-flow-tracker/internal/domain/port/core"
)

// MaxTitleLength is the maximum number of characters in a money flow title
const MaxTitleLength = 30

// MoneyFlowKind discriminates income from expense entries
type MoneyFlowKind string

// Money flow kinds
const (
	KindExpense MoneyFlowKind = "expense"
	KindIncome  MoneyFlowKind = "income"
)

// DefaultKind is used when a request omits the kind
const DefaultKind = KindExpense

// String returns the wire representation of the kind
func (k MoneyFlowKind) String() string {
	return string(k)
}

// IsValid reports whether k is one of the recognized kinds
func (k MoneyFlowKind) IsValid() bool {
	return k == KindExpense || k == KindIncome
}

// ParseMoneyFlowKind converts a wire token into a kind.
// An empty token yields DefaultKind; only the exact lowercase tokens are accepted.
func ParseMoneyFlowKind(s string) (MoneyFlowKind, error) {
	if s == "" {
		return DefaultKind, nil
	}
	kind := MoneyFlowKind(s)
	if !kind.IsValid() {
		return "", fmt.Errorf("%w: %q (must be %q or %q)", errs.ErrInvalidKind, s, KindExpense, KindIncome)
	}
	return kind, nil
}

// MoneyFlow is a single income or expense record
type MoneyFlow struct {
	ID           uint64        // Assigned by the store on insert, never changed afterwards
	Title        string        // Short description, at most MaxTitleLength characters
	Amount       int64         // Magnitude only; direction is carried by Kind
	OccurredDate time.Time     // Business date the flow happened on
	Kind         MoneyFlowKind // Income or expense
	CreatedAt    time.Time     // Set once at creation
	UpdatedAt    time.Time     // Refreshed on every mutation
}

// NewMoneyFlow creates a validated money flow that has not been stored yet
func NewMoneyFlow(
	title string,
	amount int64,
	occurredDate time.Time,
	kind MoneyFlowKind,
	timeProvider coreport.TimeProvider,
) (*MoneyFlow, error) {
	kind, err := normalizeKind(kind)
	if err != nil {
		return nil, err
	}
	if err := ValidateFields(title, amount, occurredDate); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &MoneyFlow{
		Title:        title,
		Amount:       amount,
		OccurredDate: occurredDate,
		Kind:         kind,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Replace overwrites all mutable fields. Nothing is changed when validation fails.
func (m *MoneyFlow) Replace(
	title string,
	amount int64,
	occurredDate time.Time,
	kind MoneyFlowKind,
	timeProvider coreport.TimeProvider,
) error {
	kind, err := normalizeKind(kind)
	if err != nil {
		return err
	}
	if err := ValidateFields(title, amount, occurredDate); err != nil {
		return err
	}

	m.Title = title
	m.Amount = amount
	m.OccurredDate = occurredDate
	m.Kind = kind
	m.Touch(timeProvider)
	return nil
}

// Touch refreshes UpdatedAt, keeping it at or after CreatedAt
func (m *MoneyFlow) Touch(timeProvider coreport.TimeProvider) {
	now := timeProvider.Now()
	if now.Before(m.CreatedAt) {
		now = m.CreatedAt
	}
	m.UpdatedAt = now
}

// Clone returns a copy that can be mutated independently
func (m *MoneyFlow) Clone() *MoneyFlow {
	c := *m
	return &c
}

// ValidateFields checks the user-supplied fields shared by create and update
func ValidateFields(title string, amount int64, occurredDate time.Time) error {
	if err := ValidateTitle(title); err != nil {
		return err
	}
	if amount < 0 {
		return fmt.Errorf("%w: %d", errs.ErrNegativeAmount, amount)
	}
	if occurredDate.IsZero() {
		return errs.ErrInvalidOccurredDate
	}
	return nil
}

// ValidateTitle checks that the title is present and within MaxTitleLength characters
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errs.ErrInvalidTitle
	}
	if n := utf8.RuneCountInString(title); n > MaxTitleLength {
		return fmt.Errorf("%w: %d characters (max %d)", errs.ErrTitleTooLong, n, MaxTitleLength)
	}
	return nil
}

func normalizeKind(kind MoneyFlowKind) (MoneyFlowKind, error) {
	return ParseMoneyFlowKind(string(kind))
}
