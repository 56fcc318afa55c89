package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hospitalos/opdqueue/internal/config"
	directoryHTTP "github.com/hospitalos/opdqueue/internal/directory/http"
	"github.com/hospitalos/opdqueue/internal/metrics"
	queueHTTP "github.com/hospitalos/opdqueue/internal/queue/http"
)

// Server represents the HTTP API server.
type Server struct {
	server *http.Server
	router *gin.Engine
	db     *sql.DB
	logger *slog.Logger
}

// NewServer creates a new HTTP server. The database connection is used by the
// readiness probe; routes are registered via SetupRouter.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// RouterConfig carries the handlers and options needed to build the router.
type RouterConfig struct {
	Config          *config.Config
	MetricsProvider *metrics.Provider
	TokenHandler    *queueHTTP.TokenHandler
	QueueHandler    *queueHTTP.QueueHandler
	DoctorHandler   *directoryHTTP.DoctorHandler
}

// SetupRouter builds the Gin router with middleware and all API routes.
func (s *Server) SetupRouter(rc RouterConfig) {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(
		rc.Config.CORSEnabled,
		rc.Config.CORSAllowOrigins,
		s.logger,
	); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if rc.Config.MetricsEnabled && rc.MetricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(
			rc.MetricsProvider.MeterProvider(),
			rc.Config.MetricsNamespace,
		))
	}

	router.Use(queueHTTP.CallerContextMiddleware(s.logger))

	if rc.Config.RateLimitEnabled {
		router.Use(RateLimitMiddleware(
			rc.Config.RateLimitRequestsPerSec,
			rc.Config.RateLimitBurst,
			s.logger,
		))
	}

	// Health and readiness endpoints
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")

	// Doctor directory
	v1.POST("/doctors", rc.DoctorHandler.RegisterHandler)
	v1.GET("/doctors", rc.DoctorHandler.ListHandler)
	v1.GET("/doctors/:doctor_id", rc.DoctorHandler.GetHandler)
	v1.PATCH("/doctors/:doctor_id/status", rc.DoctorHandler.SetStatusHandler)

	// Per-doctor queue
	v1.GET("/doctors/:doctor_id/queue", rc.QueueHandler.SnapshotHandler)
	v1.GET("/doctors/:doctor_id/queue/summary", rc.QueueHandler.SummaryHandler)
	v1.POST("/doctors/:doctor_id/queue/call-next", rc.QueueHandler.CallNextHandler)
	v1.POST("/doctors/:doctor_id/queue/recompute", rc.QueueHandler.RecomputeHandler)

	// Token lifecycle
	v1.POST("/tokens", rc.TokenHandler.IssueHandler)
	v1.GET("/tokens", rc.TokenHandler.ListByPatientHandler)
	v1.GET("/tokens/:token_id", rc.TokenHandler.GetHandler)
	v1.POST("/tokens/:token_id/call", rc.TokenHandler.CallHandler)
	v1.POST("/tokens/:token_id/complete", rc.TokenHandler.CompleteHandler)
	v1.POST("/tokens/:token_id/cancel", rc.TokenHandler.CancelHandler)

	s.router = router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve traffic. The database
// is the only hard dependency.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}
	ready := true

	if s.db == nil {
		components["database"] = "error"
		ready = false
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := s.db.PingContext(ctx); err != nil {
			components["database"] = "error"
			ready = false
		} else {
			components["database"] = "ok"
		}
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}

// Start starts the HTTP server. SetupRouter must be called first.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured: call SetupRouter before Start")
	}

	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
