package handler

import (
	"net/http"

	"github.com/dafibh/budget-planner/internal/domain"
	"github.com/dafibh/budget-planner/internal/service"
	"github.com/labstack/echo/v4"
)

// IncomeHandler handles the income stage
type IncomeHandler struct {
	sessionService *service.SessionService
}

// NewIncomeHandler creates a new IncomeHandler
func NewIncomeHandler(sessionService *service.SessionService) *IncomeHandler {
	return &IncomeHandler{sessionService: sessionService}
}

// IncomeRequest is the income form. Amounts are raw text as typed.
type IncomeRequest struct {
	NumPeople int                     `json:"numPeople"`
	Incomes   []domain.RawIncomeEntry `json:"incomes"`
}

// Preview handles POST /api/v1/income/preview
func (h *IncomeHandler) Preview(c echo.Context) error {
	var req IncomeRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	return c.JSON(http.StatusOK, toIncomePreviewResponse(h.sessionService.PreviewIncome(req.Incomes)))
}

// UpdateDraft handles PUT /api/v1/income/draft
func (h *IncomeHandler) UpdateDraft(c echo.Context) error {
	var req IncomeRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	st, err := h.sessionService.UpdateIncomeDraft(req.NumPeople, req.Incomes)
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(http.StatusOK, toSessionResponse(st))
}

// Submit handles POST /api/v1/income
func (h *IncomeHandler) Submit(c echo.Context) error {
	var req IncomeRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if _, err := h.sessionService.SubmitIncome(c.Request().Context(), req.NumPeople, req.Incomes); err != nil {
		return sessionError(c, err)
	}
	return c.JSON(http.StatusOK, toSessionResponse(h.sessionService.State()))
}
