// File: internal/app/server.go
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"teeup_backend/internal/auth"
	"teeup_backend/internal/booking"
	"teeup_backend/internal/config"
	"teeup_backend/internal/jobs"
	"teeup_backend/internal/middleware"
	"teeup_backend/internal/page"
	platformElasticsearch "teeup_backend/internal/platform/elasticsearch"
	"teeup_backend/internal/profile"
	"teeup_backend/internal/review"
	"teeup_backend/internal/theme"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server struct holds the dependencies for the HTTP server.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	cfg        *config.Config
	logger     *zap.Logger

	// ESClient is nil when ELASTICSEARCH_URL is unset.
	ESClient  *platformElasticsearch.ESClientWrapper
	AppLogger *zap.Logger

	digestJob *jobs.ApplicationDigestJob
}

// NewServer creates a new instance of our application server.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	profileHandler *profile.Handler,
	bookingHandler *booking.Handler,
	reviewHandler *review.Handler,
	themeHandler *theme.Handler,
	pageHandler *page.Handler,
	adminVerifier auth.AdminVerifier,
	digestJob *jobs.ApplicationDigestJob,
	esClient *platformElasticsearch.ESClientWrapper,
) (*Server, error) {
	gin.SetMode(cfg.GinMode)
	router := gin.New()

	templates, err := page.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}
	router.SetHTMLTemplate(templates)

	// --- Global Middleware ---
	router.Use(middleware.ZapLogger(logger, cfg))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	if len(corsConfig.AllowOrigins) == 0 || (len(corsConfig.AllowOrigins) == 1 && corsConfig.AllowOrigins[0] == "*") {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{"Content-Length", middleware.RequestIDHeader, page.FallbackHeader}
	router.Use(cors.New(corsConfig))

	adminMW := middleware.AdminAuth(adminVerifier, cfg.AdminAuthDisabled, logger.Named("AdminAuth"))

	// --- Setup Routes ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "TEE:UP API is healthy!"})
	})

	api := router.Group("/api")
	profileHandler.RegisterRoutes(api)
	bookingHandler.RegisterRoutes(api)
	reviewHandler.RegisterRoutes(api, adminMW)
	themeHandler.RegisterRoutes(api, adminMW)

	pageHandler.RegisterRoutes(router)

	timeout := cfg.ServerTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	addr := fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		cfg:        cfg,
		logger:     logger,
		ESClient:   esClient,
		AppLogger:  logger,
		digestJob:  digestJob,
	}, nil
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Start() error {
	if s.digestJob != nil {
		if err := s.digestJob.SetupAndStart(); err != nil {
			s.logger.Error("Failed to setup and start application digest job", zap.Error(err))
		}
	} else {
		s.logger.Info("Application digest job is not configured, skipping start.")
	}

	s.logger.Info("HTTP Server starting",
		zap.String("address", s.httpServer.Addr),
		zap.String("gin_mode", s.cfg.GinMode),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Failed to start HTTP server", zap.Error(err))
		return err
	}
	s.logger.Info("HTTP Server stopped")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Attempting graceful server shutdown...")
	if s.digestJob != nil {
		s.digestJob.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}
