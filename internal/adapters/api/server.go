package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/andrescamacho/factory-planner/internal/application/common"
	"github.com/andrescamacho/factory-planner/internal/infrastructure/config"
)

// Server exposes the planning commands and queries over HTTP
type Server struct {
	mediator common.Mediator
	logger   common.Logger
	cfg      config.APIConfig
	solver   config.SolverConfig
	limiter  *rate.Limiter
	router   *gin.Engine
}

// ServerOption customizes a Server
type ServerOption func(*Server, *gin.Engine)

// WithMetrics mounts the Prometheus handler for registry at path
func WithMetrics(path string, registry *prometheus.Registry) ServerOption {
	return func(s *Server, router *gin.Engine) {
		if registry == nil {
			return
		}
		router.GET(path, gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))
	}
}

// NewServer creates the HTTP server and registers its routes
func NewServer(mediator common.Mediator, logger common.Logger, cfg config.APIConfig, solver config.SolverConfig, opts ...ServerOption) *Server {
	if logger == nil {
		logger = common.NoOpLogger()
	}

	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		mediator: mediator,
		logger:   logger,
		cfg:      cfg,
		solver:   solver,
		limiter:  rate.NewLimiter(rate.Limit(cfg.RateLimit.Requests), cfg.RateLimit.Burst),
		router:   router,
	}
	router.Use(s.requestLogger())

	router.GET("/health", s.health)

	v1 := router.Group("/api/v1")
	v1.GET("/projects", s.listProjects)
	v1.GET("/projects/:name/requirements", s.projectRequirements)
	v1.POST("/projects/:name/solve", s.rateLimit(), s.solveProject)
	v1.POST("/analyze", s.rateLimit(), s.analyzeProjects)
	v1.GET("/power", s.power)
	v1.GET("/runs", s.listRuns)

	for _, opt := range opts {
		opt(s, router)
	}

	return s
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port)),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Log(common.LevelInfo, "HTTP API listening", map[string]interface{}{"address": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown failed: %w", err)
	}
	return <-errCh
}

// rateLimit rejects solve requests beyond the configured token bucket
func (s *Server) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many solve requests, retry later"})
			return
		}
		c.Next()
	}
}

// requestLogger logs one line per request through the logger port
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := common.LevelDebug
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = common.LevelError
		}
		s.logger.Log(level, "HTTP request", map[string]interface{}{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		})
	}
}

// requestContext bounds a request by the configured timeout and attaches the logger
func (s *Server) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	ctx := common.WithLogger(c.Request.Context(), s.logger)
	return context.WithTimeout(ctx, s.cfg.RequestTimeout)
}
