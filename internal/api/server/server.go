package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/api/middleware"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/api/rest"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/api/shared/executor"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/logger"
)

// Config holds the server configuration
type Config struct {
	Debug              bool
	Host               string
	Port               int
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	IdleTimeout        time.Duration
	CORSAllowedOrigins []string
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	executor   executor.Executor
	authCfg    middleware.AuthConfig
	checks     map[string]rest.HealthChecker
	httpServer *http.Server
}

// New creates a new API server. checks are reported by the health endpoint.
func New(cfg Config, exec executor.Executor, authCfg middleware.AuthConfig, checks map[string]rest.HealthChecker) *Server {
	return &Server{
		config:   cfg,
		executor: exec,
		authCfg:  authCfg,
		checks:   checks,
	}
}

// Router builds the gin engine with middleware and routes
func (s *Server) Router() *gin.Engine {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.SetupCORS(s.config.CORSAllowedOrigins))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rest.SetupRoutes(router, rest.NewHandler(s.executor, s.checks), s.authCfg)

	return router
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
