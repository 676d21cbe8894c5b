package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace-indexer/internal/adapter"
	"github.com/feral-file/ff-marketplace-indexer/internal/api/middleware"
	"github.com/feral-file/ff-marketplace-indexer/internal/api/rest"
	"github.com/feral-file/ff-marketplace-indexer/internal/logger"
	"github.com/feral-file/ff-marketplace-indexer/internal/scheduler"
	"github.com/feral-file/ff-marketplace-indexer/internal/store"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	store      store.Store
	scheduler  scheduler.Scheduler
	auth       *middleware.Authenticator
	clock      adapter.Clock
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, st store.Store, sched scheduler.Scheduler, auth *middleware.Authenticator, clock adapter.Clock) *Server {
	return &Server{
		config:    cfg,
		store:     st,
		scheduler: sched,
		auth:      auth,
		clock:     clock,
	}
}

// Router builds the gin engine with middleware and routes
func (s *Server) Router() *gin.Engine {
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	rest.SetupRoutes(router, rest.NewHandler(s.store, s.scheduler, s.clock), s.auth)

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

	logger.Info("Starting API server", zap.String("address", addr))

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
