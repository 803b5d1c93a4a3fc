// Package server exposes the scrape service over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"articled/internal/article"
)

// Scraper is the capability the HTTP boundary needs from the scrape layer.
type Scraper interface {
	Scrape(ctx context.Context, url string, timeout time.Duration) (article.Result, error)
}

// Config holds the HTTP server settings.
type Config struct {
	Port           int
	DefaultTimeout time.Duration
	MaxTimeout     time.Duration
	AllowedOrigins []string
	ServiceVersion string
	Debug          bool
}

// SetDefaults fills zero-valued fields.
func (c *Config) SetDefaults() {
	if c.Port == 0 {
		c.Port = 8000
	}
	if c.DefaultTimeout == 0 {
		c.DefaultTimeout = 30 * time.Second
	}
	if c.MaxTimeout == 0 {
		c.MaxTimeout = 2 * time.Minute
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	if c.ServiceVersion == "" {
		c.ServiceVersion = "dev"
	}
}

// Server is the HTTP server with lifecycle management.
type Server struct {
	engine  *gin.Engine
	server  *http.Server
	scraper Scraper
	cfg     Config
	log     *zap.Logger
}

// New creates the HTTP server with middleware and routes configured.
func New(cfg Config, scraper Scraper, log *zap.Logger) *Server {
	cfg.SetDefaults()

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(log))
	engine.Use(corsMiddleware(cfg.AllowedOrigins))

	s := &Server{
		engine:  engine,
		scraper: scraper,
		cfg:     cfg,
		log:     log,
		server: &http.Server{
			Addr:        fmt.Sprintf(":%d", cfg.Port),
			ReadTimeout: 15 * time.Second,
			// Write timeout must cover a full scrape.
			WriteTimeout: cfg.MaxTimeout + 30*time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
	s.server.Handler = engine

	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/", s.handleRoot)
	s.engine.GET("/health", s.handleHealth)
	s.engine.POST("/scrape", s.handleScrape)
}

// Handler returns the underlying handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start runs the server until it is shut down.
func (s *Server) Start() error {
	s.log.Info("starting HTTP server",
		zap.String("address", s.server.Addr),
		zap.String("version", s.cfg.ServiceVersion))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server, letting in-flight scrapes finish.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
