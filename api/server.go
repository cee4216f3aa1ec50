package api

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/types"
	"github.com/killallgit/podcast-api/pkg/config"
)

// Server represents the HTTP server
type Server struct {
	engine             *gin.Engine
	httpServer         *http.Server
	cfg                *config.Config
	rateLimiters       *sync.Map
	cleanupInitialized sync.Once
	cleanupStop        chan struct{}
	stopOnce           sync.Once

	// Dependencies for handlers
	dependencies *types.Dependencies
}

// NewServer creates a new HTTP server from the server section of cfg
func NewServer(cfg *config.Config, deps *types.Dependencies) *Server {
	// Create Gin engine with recovery middleware only
	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		engine:       engine,
		cfg:          cfg,
		rateLimiters: &sync.Map{},
		cleanupStop:  make(chan struct{}),
		dependencies: deps,
		httpServer: &http.Server{
			Addr:           fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:        engine,
			ReadTimeout:    cfg.Server.ReadTimeout,
			WriteTimeout:   cfg.Server.WriteTimeout,
			IdleTimeout:    cfg.Server.IdleTimeout,
			MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		},
	}
}

// Engine returns the Gin engine for testing
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Initialize sets up middleware and routes
func (s *Server) Initialize() error {
	if s.dependencies == nil {
		return fmt.Errorf("server dependencies are required")
	}

	s.setupMiddleware()

	return RegisterRoutes(s.engine, s.dependencies, s.rateLimiter())
}

// setupMiddleware configures global middleware
func (s *Server) setupMiddleware() {
	if s.cfg.Security.EnableRequestID {
		s.engine.Use(RequestID())
	}

	if s.dependencies.Logger != nil {
		s.engine.Use(RequestLogger(s.dependencies.Logger))
	}

	if s.cfg.Security.EnableCORS {
		s.engine.Use(CORS(s.cfg.Security.CORSOrigins...))
	}

	maxBody := s.cfg.Server.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 1024 * 1024
	}
	s.engine.Use(RequestSizeLimitWithSize(maxBody))
}

// rateLimiter returns the per client limiter for API routes, nil when disabled
func (s *Server) rateLimiter() gin.HandlerFunc {
	rl := s.cfg.RateLimiting
	if !rl.Enabled {
		return nil
	}
	if rl.RPS <= 0 {
		rl.RPS = 10
	}
	if rl.Burst <= 0 {
		rl.Burst = rl.RPS * 2
	}
	return PerClientRateLimit(s.rateLimiters, s.cleanupStop, &s.cleanupInitialized, rl.RPS, rl.Burst)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	// Stop the rate limiter cleanup goroutine
	s.stopOnce.Do(func() { close(s.cleanupStop) })

	return s.httpServer.Shutdown(ctx)
}
