package service

import (
	"context"
	"time"

	"github.com/dafibh/budget-planner/internal/report"
	"github.com/dafibh/budget-planner/internal/repository/storage"
	"github.com/dafibh/budget-planner/internal/util"
	"github.com/rs/zerolog/log"
)

// ExportFormat is a downloadable report format
type ExportFormat string

const (
	ExportPDF  ExportFormat = "pdf"
	ExportXLSX ExportFormat = "xlsx"
)

// ContentType returns the MIME type of the format
func (f ExportFormat) ContentType() string {
	if f == ExportXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/pdf"
}

const presignExpiry = 15 * time.Minute

// ExportedReport is a rendered report ready for download
type ExportedReport struct {
	FileName    string
	ContentType string
	Data        []byte
	// URL is the presigned archive link, empty when archiving is disabled or failed
	URL string
}

// ExportService renders the session report to files and optionally archives them
type ExportService struct {
	sessionService *SessionService
	pdfRenderer    *report.PDFRenderer
	xlsxRenderer   *report.XLSXRenderer
	pageThreshold  float64
	reportRepo     storage.ReportRepository
	now            func() time.Time
}

// NewExportService creates a new ExportService
func NewExportService(
	sessionService *SessionService,
	pdfRenderer *report.PDFRenderer,
	xlsxRenderer *report.XLSXRenderer,
	pageThreshold float64,
) *ExportService {
	return &ExportService{
		sessionService: sessionService,
		pdfRenderer:    pdfRenderer,
		xlsxRenderer:   xlsxRenderer,
		pageThreshold:  pageThreshold,
		now:            time.Now,
	}
}

// SetReportRepository enables archiving of exported reports
func (s *ExportService) SetReportRepository(repo storage.ReportRepository) {
	s.reportRepo = repo
}

// Export renders the current report. The file name carries the current date.
func (s *ExportService) Export(ctx context.Context, format ExportFormat) (*ExportedReport, error) {
	lines, err := s.sessionService.Report()
	if err != nil {
		return nil, err
	}

	now := s.now()

	var data []byte
	switch format {
	case ExportXLSX:
		data, err = s.xlsxRenderer.Render(lines, now)
	default:
		format = ExportPDF
		pages := report.Paginate(lines, report.Options{
			PageThreshold: s.pageThreshold,
			GeneratedAt:   now,
		})
		data, err = s.pdfRenderer.Render(pages)
	}
	if err != nil {
		log.Error().Err(err).Str("format", string(format)).Msg("Failed to render report")
		return nil, err
	}

	exported := &ExportedReport{
		FileName:    util.ReportFileName(now, string(format)),
		ContentType: format.ContentType(),
		Data:        data,
	}
	exported.URL = s.archive(ctx, exported)

	return exported, nil
}

// archive uploads the report when a repository is configured. Failures are
// logged; the download itself still succeeds.
func (s *ExportService) archive(ctx context.Context, exported *ExportedReport) string {
	if s.reportRepo == nil {
		return ""
	}

	objectPath, err := s.reportRepo.Archive(ctx, exported.FileName, exported.Data, exported.ContentType)
	if err != nil {
		log.Error().Err(err).Str("file", exported.FileName).Msg("Failed to archive report")
		return ""
	}

	url, err := s.reportRepo.PresignedURL(ctx, objectPath, presignExpiry)
	if err != nil {
		log.Error().Err(err).Str("object", objectPath).Msg("Failed to presign report URL")
		return ""
	}

	log.Info().Str("object", objectPath).Msg("Report archived")
	return url
}
