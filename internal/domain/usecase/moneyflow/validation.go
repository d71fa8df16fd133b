package moneyflow

import (
	"fmt"

	"github.com/amirhossein-jamali/money-flow-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/money-flow-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/domain/port/usecase"
)

// MoneyFlowValidator checks command input before any store work starts
type MoneyFlowValidator struct{}

// NewMoneyFlowValidator creates a new MoneyFlowValidator
func NewMoneyFlowValidator() *MoneyFlowValidator {
	return &MoneyFlowValidator{}
}

// ValidateCreate validates all fields of a create command
func (v *MoneyFlowValidator) ValidateCreate(cmd usecase.CreateMoneyFlowCommand) error {
	if err := v.validateKind(cmd.Kind); err != nil {
		return err
	}
	return entity.ValidateFields(cmd.Title, cmd.Amount, cmd.OccurredDate)
}

// ValidateUpdate validates the target ID and all fields of an update command
func (v *MoneyFlowValidator) ValidateUpdate(cmd usecase.UpdateMoneyFlowCommand) error {
	if err := v.ValidateID(cmd.ID); err != nil {
		return err
	}
	if err := v.validateKind(cmd.Kind); err != nil {
		return err
	}
	return entity.ValidateFields(cmd.Title, cmd.Amount, cmd.OccurredDate)
}

// ValidateID checks that id can identify a stored money flow
func (v *MoneyFlowValidator) ValidateID(id uint64) error {
	if id == 0 {
		return errs.ErrInvalidMoneyFlowID
	}
	return nil
}

// ValidateFilter checks the optional kind filter of a list query
func (v *MoneyFlowValidator) ValidateFilter(kind *entity.MoneyFlowKind) error {
	if kind == nil {
		return nil
	}
	if !kind.IsValid() {
		return fmt.Errorf("%w: %q", errs.ErrInvalidKind, *kind)
	}
	return nil
}

// validateKind accepts an empty kind, which later resolves to the default
func (v *MoneyFlowValidator) validateKind(kind entity.MoneyFlowKind) error {
	_, err := entity.ParseMoneyFlowKind(string(kind))
	return err
}
