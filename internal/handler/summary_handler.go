package handler

import (
	"net/http"

	"github.com/dafibh/budget-planner/internal/service"
	"github.com/labstack/echo/v4"
)

// SummaryHandler serves the dashboard view
type SummaryHandler struct {
	sessionService *service.SessionService
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(sessionService *service.SessionService) *SummaryHandler {
	return &SummaryHandler{sessionService: sessionService}
}

// GetSummary handles GET /api/v1/summary
func (h *SummaryHandler) GetSummary(c echo.Context) error {
	view, err := h.sessionService.Summary()
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(http.StatusOK, toSummaryResponse(view))
}
