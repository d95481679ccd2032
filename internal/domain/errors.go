package domain

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrNoPeople                = errors.New("number of people must be greater than zero")
	ErrZeroIncome              = errors.New("total income must be greater than zero")
	ErrUnknownCategory         = errors.New("unknown budget category")
	ErrSubcategoriesNotAllowed = errors.New("category does not support subcategories")
	ErrSubcategoryNotFound     = errors.New("subcategory not found")
	ErrInvalidTransition       = errors.New("invalid stage transition")
	ErrIncomeRequired          = errors.New("income must be finalized first")
	ErrBudgetRequired          = errors.New("budget must be finalized first")
	ErrStateNotFound           = errors.New("saved state not found")
)

// ValidationReason identifies why income finalization was rejected
type ValidationReason string

const (
	ReasonNoPeople   ValidationReason = "NoPeople"
	ReasonZeroIncome ValidationReason = "ZeroIncome"
)

// ValidationError is returned by income finalization. It is the only
// user-facing validation failure; everything else is coerced to zero.
type ValidationError struct {
	Reason ValidationReason
}

// NewValidationError creates a ValidationError for the given reason
func NewValidationError(reason ValidationReason) *ValidationError {
	return &ValidationError{Reason: reason}
}

func (e *ValidationError) Error() string {
	if sentinel := e.Unwrap(); sentinel != nil {
		return fmt.Sprintf("validation failed (%s): %s", e.Reason, sentinel.Error())
	}
	return fmt.Sprintf("validation failed (%s)", e.Reason)
}

// Unwrap lets errors.Is match a ValidationError against ErrNoPeople / ErrZeroIncome
func (e *ValidationError) Unwrap() error {
	switch e.Reason {
	case ReasonNoPeople:
		return ErrNoPeople
	case ReasonZeroIncome:
		return ErrZeroIncome
	}
	return nil
}
