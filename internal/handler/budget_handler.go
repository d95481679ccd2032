package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dafibh/budget-planner/internal/domain"
	"github.com/dafibh/budget-planner/internal/service"
	"github.com/labstack/echo/v4"
)

// BudgetHandler handles the budget stage
type BudgetHandler struct {
	sessionService *service.SessionService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(sessionService *service.SessionService) *BudgetHandler {
	return &BudgetHandler{sessionService: sessionService}
}

// BudgetRequest is the budget form keyed by category id
type BudgetRequest struct {
	Categories domain.RawBudget `json:"categories"`
}

// AddSubcategoryRequest asks for a new empty subcategory
type AddSubcategoryRequest struct {
	CategoryID domain.CategoryID `json:"categoryId"`
}

// AddSubcategoryResponse returns the generated subcategory id
type AddSubcategoryResponse struct {
	CategoryID domain.CategoryID `json:"categoryId"`
	ID         string            `json:"id"`
}

// MainAmountRequest sets the single amount of a category
type MainAmountRequest struct {
	Amount string `json:"amount"`
}

// UpdateSubcategoryRequest replaces a subcategory's fields
type UpdateSubcategoryRequest struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// Preview handles POST /api/v1/budget/preview
func (h *BudgetHandler) Preview(c echo.Context) error {
	var req BudgetRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	preview, err := h.sessionService.PreviewBudget(req.Categories)
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(http.StatusOK, toBudgetPreviewResponse(preview))
}

// UpdateDraft handles PUT /api/v1/budget/draft
func (h *BudgetHandler) UpdateDraft(c echo.Context) error {
	var req BudgetRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	st, err := h.sessionService.UpdateBudgetDraft(req.Categories)
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(http.StatusOK, toSessionResponse(st))
}

// AddSubcategory handles POST /api/v1/budget/subcategories
func (h *BudgetHandler) AddSubcategory(c echo.Context) error {
	var req AddSubcategoryRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if req.CategoryID == "" {
		return NewValidationError(c, "Category is required", []ValidationError{{Field: "categoryId", Message: "Required"}})
	}
	id, err := h.sessionService.AddSubcategory(req.CategoryID)
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(http.StatusCreated, AddSubcategoryResponse{CategoryID: req.CategoryID, ID: id})
}

// SetMain handles PUT /api/v1/budget/categories/:categoryId/main
func (h *BudgetHandler) SetMain(c echo.Context) error {
	var req MainAmountRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	categoryID := domain.CategoryID(c.Param("categoryId"))
	if err := h.sessionService.SetMain(categoryID, req.Amount); err != nil {
		return sessionError(c, err)
	}
	return c.JSON(http.StatusOK, toSessionResponse(h.sessionService.State()))
}

// UpdateSubcategory handles PUT /api/v1/budget/subcategories/:categoryId/:id
func (h *BudgetHandler) UpdateSubcategory(c echo.Context) error {
	var req UpdateSubcategoryRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	categoryID := domain.CategoryID(c.Param("categoryId"))
	if err := h.sessionService.UpdateSubcategory(categoryID, c.Param("id"), req.Name, req.Amount); err != nil {
		return sessionError(c, err)
	}
	return c.JSON(http.StatusOK, toSessionResponse(h.sessionService.State()))
}

// RemoveSubcategory handles DELETE /api/v1/budget/subcategories/:categoryId/:id
func (h *BudgetHandler) RemoveSubcategory(c echo.Context) error {
	categoryID := domain.CategoryID(c.Param("categoryId"))
	if err := h.sessionService.RemoveSubcategory(categoryID, c.Param("id")); err != nil {
		return sessionError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Submit handles POST /api/v1/budget. An empty body finalizes the stored draft.
func (h *BudgetHandler) Submit(c echo.Context) error {
	var req BudgetRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return invalidBody(c)
	}
	if _, err := h.sessionService.SubmitBudget(c.Request().Context(), req.Categories); err != nil {
		return sessionError(c, err)
	}
	return c.JSON(http.StatusOK, toSessionResponse(h.sessionService.State()))
}
