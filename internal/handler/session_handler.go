package handler

import (
	"net/http"

	"github.com/dafibh/budget-planner/internal/service"
	"github.com/labstack/echo/v4"
)

// SessionHandler handles session state and stage navigation
type SessionHandler struct {
	sessionService *service.SessionService
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// GetSession handles GET /api/v1/session
func (h *SessionHandler) GetSession(c echo.Context) error {
	return c.JSON(http.StatusOK, toSessionResponse(h.sessionService.State()))
}

// Back handles POST /api/v1/session/back (budget -> income)
func (h *SessionHandler) Back(c echo.Context) error {
	st, err := h.sessionService.Back(c.Request().Context())
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(http.StatusOK, toSessionResponse(st))
}

// Edit handles POST /api/v1/session/edit (dashboard -> budget)
func (h *SessionHandler) Edit(c echo.Context) error {
	st, err := h.sessionService.Edit(c.Request().Context())
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(http.StatusOK, toSessionResponse(st))
}

// Reset handles POST /api/v1/session/reset
func (h *SessionHandler) Reset(c echo.Context) error {
	st := h.sessionService.Reset(c.Request().Context())
	return c.JSON(http.StatusOK, toSessionResponse(st))
}
