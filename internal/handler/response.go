package handler

import (
	"errors"
	"net/http"

	"github.com/dafibh/budget-planner/internal/domain"
	"github.com/dafibh/budget-planner/internal/report"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ProblemDetails represents an RFC 7807 Problem Details response
type ProblemDetails struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail,omitempty"`
	Instance string            `json:"instance,omitempty"`
	Reason   string            `json:"reason,omitempty"`
	Errors   []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error types
const (
	ErrorTypeValidation  = "https://budget-planner.app/errors/validation"
	ErrorTypeNotFound    = "https://budget-planner.app/errors/not-found"
	ErrorTypeConflict    = "https://budget-planner.app/errors/conflict"
	ErrorTypeUnavailable = "https://budget-planner.app/errors/unavailable"
	ErrorTypeInternal    = "https://budget-planner.app/errors/internal"
)

// NewValidationError creates a validation error response
func NewValidationError(c echo.Context, detail string, errors []ValidationError) error {
	return c.JSON(http.StatusBadRequest, ProblemDetails{
		Type:     ErrorTypeValidation,
		Title:    "Validation Error",
		Status:   http.StatusBadRequest,
		Detail:   detail,
		Instance: c.Request().URL.Path,
		Errors:   errors,
	})
}

// NewIncomeValidationError reports a rejected income form with its reason
func NewIncomeValidationError(c echo.Context, verr *domain.ValidationError) error {
	field := "incomes"
	if verr.Reason == domain.ReasonNoPeople {
		field = "numPeople"
	}
	message := string(verr.Reason)
	if sentinel := verr.Unwrap(); sentinel != nil {
		message = sentinel.Error()
	}
	return c.JSON(http.StatusBadRequest, ProblemDetails{
		Type:     ErrorTypeValidation,
		Title:    "Validation Error",
		Status:   http.StatusBadRequest,
		Detail:   verr.Error(),
		Instance: c.Request().URL.Path,
		Reason:   string(verr.Reason),
		Errors:   []ValidationError{{Field: field, Message: message}},
	})
}

// NewNotFoundError creates a not found error response
func NewNotFoundError(c echo.Context, detail string) error {
	return c.JSON(http.StatusNotFound, ProblemDetails{
		Type:     ErrorTypeNotFound,
		Title:    "Not Found",
		Status:   http.StatusNotFound,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewConflictError creates a conflict error response
func NewConflictError(c echo.Context, detail string) error {
	return c.JSON(http.StatusConflict, ProblemDetails{
		Type:     ErrorTypeConflict,
		Title:    "Conflict",
		Status:   http.StatusConflict,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewUnavailableError creates a service unavailable error response
func NewUnavailableError(c echo.Context, detail string) error {
	return c.JSON(http.StatusServiceUnavailable, ProblemDetails{
		Type:     ErrorTypeUnavailable,
		Title:    "Service Unavailable",
		Status:   http.StatusServiceUnavailable,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewInternalError creates an internal error response
func NewInternalError(c echo.Context, detail string) error {
	return c.JSON(http.StatusInternalServerError, ProblemDetails{
		Type:     ErrorTypeInternal,
		Title:    "Internal Server Error",
		Status:   http.StatusInternalServerError,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// invalidBody reports a request body that could not be decoded
func invalidBody(c echo.Context) error {
	return NewValidationError(c, "Invalid request body", nil)
}

// sessionError maps session and engine errors to problem responses
func sessionError(c echo.Context, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return NewIncomeValidationError(c, verr)
	case errors.Is(err, domain.ErrInvalidTransition):
		return NewConflictError(c, "Action not allowed at the current stage")
	case errors.Is(err, domain.ErrIncomeRequired):
		return NewConflictError(c, "Income must be submitted first")
	case errors.Is(err, domain.ErrBudgetRequired):
		return NewConflictError(c, "Budget must be submitted first")
	case errors.Is(err, domain.ErrUnknownCategory):
		return NewValidationError(c, "Unknown budget category", []ValidationError{{Field: "categoryId", Message: "Must be one of the budget categories"}})
	case errors.Is(err, domain.ErrSubcategoriesNotAllowed):
		return NewValidationError(c, "Category does not support subcategories", []ValidationError{{Field: "categoryId", Message: "Subcategories are not allowed for this category"}})
	case errors.Is(err, domain.ErrSubcategoryNotFound):
		return NewNotFoundError(c, "Subcategory not found")
	case errors.Is(err, report.ErrFontNotConfigured):
		return NewUnavailableError(c, "PDF export is not configured")
	}

	log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("Unhandled session error")
	return NewInternalError(c, "Something went wrong")
}
