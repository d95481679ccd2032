package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dafibh/budget-planner/internal/config"
	"github.com/dafibh/budget-planner/internal/handler"
	"github.com/dafibh/budget-planner/internal/middleware"
	"github.com/dafibh/budget-planner/internal/report"
	"github.com/dafibh/budget-planner/internal/repository/storage"
	"github.com/dafibh/budget-planner/internal/service"
	"github.com/dafibh/budget-planner/internal/websocket"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Session persistence
	store, closeStore, err := openStateStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StateBackend).Msg("Failed to open state store")
	}
	defer closeStore()

	// WebSocket hub
	hub := websocket.NewHub()

	// Initialize services
	incomeService := service.NewIncomeService()
	sessionService := service.NewSessionService(
		store,
		incomeService,
		service.NewBudgetService(),
		service.NewSummaryService(incomeService),
		service.NewReportService(),
	)
	sessionService.SetEventPublisher(hub)

	sessionService.Restore(ctx)

	exportService := service.NewExportService(
		sessionService,
		report.NewPDFRenderer(cfg.Report.FontPath),
		report.NewXLSXRenderer(),
		cfg.Report.PageThreshold,
	)
	if cfg.Report.FontPath == "" {
		log.Warn().Msg("REPORT_FONT_PATH not set; PDF export is disabled")
	}
	if cfg.S3.Enabled() {
		reportRepo, err := storage.NewS3ReportRepository(ctx, cfg.S3)
		if err != nil {
			log.Fatal().Err(err).Str("bucket", cfg.S3.Bucket).Msg("Failed to initialize report archive")
		}
		exportService.SetReportRepository(reportRepo)
		log.Info().Str("bucket", cfg.S3.Bucket).Msg("Report archive enabled")
	}

	// Initialize handlers
	handlers := handler.Handlers{
		Session:   handler.NewSessionHandler(sessionService),
		Income:    handler.NewIncomeHandler(sessionService),
		Budget:    handler.NewBudgetHandler(sessionService),
		Summary:   handler.NewSummaryHandler(sessionService),
		Report:    handler.NewReportHandler(sessionService, exportService),
		WebSocket: handler.NewWebSocketHandler(hub, cfg.CORSOrigins, websocket.ClientOptions{
			PingInterval: cfg.WSPingInterval,
			Snapshot:     func() interface{} { return sessionService.State() },
		}),
	}

	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimitPerMinute, cfg.RateLimitBurst)
	defer rateLimiter.Stop()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		ExposeHeaders:    []string{echo.HeaderContentDisposition, handler.HeaderReportURL},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Security headers middleware (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Register API routes
	handler.RegisterRoutes(e, handlers, middleware.RateLimitMiddleware(rateLimiter))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.StateBackend).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server stopped with error")
		return
	}

	log.Info().Msg("Server exited")
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			log.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return nil
		}
	}
}
