package handler

import (
	"fmt"
	"net/http"

	"github.com/dafibh/budget-planner/internal/service"
	"github.com/labstack/echo/v4"
)

// HeaderReportURL carries the presigned link of an archived export
const HeaderReportURL = "X-Report-URL"

// ReportHandler serves the report as JSON and as downloads
type ReportHandler struct {
	sessionService *service.SessionService
	exportService  *service.ExportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(sessionService *service.SessionService, exportService *service.ExportService) *ReportHandler {
	return &ReportHandler{
		sessionService: sessionService,
		exportService:  exportService,
	}
}

// GetReport handles GET /api/v1/report
func (h *ReportHandler) GetReport(c echo.Context) error {
	lines, err := h.sessionService.Report()
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(http.StatusOK, toReportResponse(lines))
}

// DownloadPDF handles GET /api/v1/report/pdf
func (h *ReportHandler) DownloadPDF(c echo.Context) error {
	return h.download(c, service.ExportPDF)
}

// DownloadXLSX handles GET /api/v1/report/xlsx
func (h *ReportHandler) DownloadXLSX(c echo.Context) error {
	return h.download(c, service.ExportXLSX)
}

func (h *ReportHandler) download(c echo.Context, format service.ExportFormat) error {
	exported, err := h.exportService.Export(c.Request().Context(), format)
	if err != nil {
		return sessionError(c, err)
	}

	header := c.Response().Header()
	header.Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", exported.FileName))
	if exported.URL != "" {
		header.Set(HeaderReportURL, exported.URL)
	}
	return c.Blob(http.StatusOK, exported.ContentType, exported.Data)
}
