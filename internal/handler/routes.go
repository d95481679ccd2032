package handler

import (
	"github.com/labstack/echo/v4"
)

// Handlers groups every HTTP handler for route registration
type Handlers struct {
	Session   *SessionHandler
	Income    *IncomeHandler
	Budget    *BudgetHandler
	Summary   *SummaryHandler
	Report    *ReportHandler
	WebSocket *WebSocketHandler
}

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, h Handlers, apiMiddleware ...echo.MiddlewareFunc) {
	// API version 1
	api := e.Group("/api/v1", apiMiddleware...)

	// Session navigation
	session := api.Group("/session")
	session.GET("", h.Session.GetSession)
	session.POST("/back", h.Session.Back)
	session.POST("/edit", h.Session.Edit)
	session.POST("/reset", h.Session.Reset)

	// Income stage
	income := api.Group("/income")
	income.POST("", h.Income.Submit)
	income.POST("/preview", h.Income.Preview)
	income.PUT("/draft", h.Income.UpdateDraft)

	// Budget stage
	budget := api.Group("/budget")
	budget.POST("", h.Budget.Submit)
	budget.POST("/preview", h.Budget.Preview)
	budget.PUT("/draft", h.Budget.UpdateDraft)
	budget.POST("/subcategories", h.Budget.AddSubcategory)
	budget.PUT("/categories/:categoryId/main", h.Budget.SetMain)
	budget.PUT("/subcategories/:categoryId/:id", h.Budget.UpdateSubcategory)
	budget.DELETE("/subcategories/:categoryId/:id", h.Budget.RemoveSubcategory)

	// Dashboard
	api.GET("/summary", h.Summary.GetSummary)

	// Report
	report := api.Group("/report")
	report.GET("", h.Report.GetReport)
	report.GET("/pdf", h.Report.DownloadPDF)
	report.GET("/xlsx", h.Report.DownloadXLSX)

	// WebSocket (not rate limited)
	if h.WebSocket != nil {
		e.GET("/ws", h.WebSocket.HandleWS)
	}
}
