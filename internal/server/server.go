// Package server hosts a local preview of the generated site. It serves the
// output directory, falls back to the root document for hash-fragment
// navigation, and optionally rebuilds on source changes.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devforge/buildlog/internal/logging"
	"github.com/devforge/buildlog/pkg/interfaces"
)

const (
	defaultAddr            = ":8080"
	defaultShutdownTimeout = 5 * time.Second
)

// Config controls the preview server.
type Config struct {
	// Addr is the listen address, ":8080" by default.
	Addr string
	// OutputDir is the generated site root to serve.
	OutputDir string
	// SPAFallback serves the root index.html for unknown paths so fragment
	// navigation keeps working on deep links.
	SPAFallback bool
}

// Server serves a generated site directory over HTTP.
type Server struct {
	cfg    Config
	engine *gin.Engine
	logger interfaces.Logger

	httpServer *http.Server
}

// New builds a preview server for the given output directory.
func New(cfg Config, logger interfaces.Logger) (*Server, error) {
	if strings.TrimSpace(cfg.OutputDir) == "" {
		return nil, errors.New("server: output directory is required")
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		cfg.Addr = defaultAddr
	}
	if logger == nil {
		logger = logging.NoOp()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(logger))

	srv := &Server{
		cfg:    cfg,
		engine: engine,
		logger: logger,
	}
	srv.registerRoutes()
	return srv, nil
}

// Handler exposes the underlying HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Start serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "addr", s.cfg.Addr, "dir", s.cfg.OutputDir)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	case err := <-errCh:
		return err
	}
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.engine.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusMethodNotAllowed)
			return
		}
		s.serveFile(c)
	})
}

// serveFile maps request paths onto the output tree. Directory paths resolve
// to their index.html; unknown paths fall back to the root document when
// SPAFallback is enabled so `/#log/some-post` style links survive a reload.
func (s *Server) serveFile(c *gin.Context) {
	reqPath := path.Clean("/" + c.Request.URL.Path)
	candidate := filepath.Join(s.cfg.OutputDir, filepath.FromSlash(reqPath))

	info, err := os.Stat(candidate)
	switch {
	case err == nil && info.IsDir():
		candidate = filepath.Join(candidate, "index.html")
		if _, err := os.Stat(candidate); err == nil {
			c.File(candidate)
			return
		}
	case err == nil:
		c.File(candidate)
		return
	}

	if s.cfg.SPAFallback {
		root := filepath.Join(s.cfg.OutputDir, "index.html")
		if _, err := os.Stat(root); err == nil {
			c.File(root)
			return
		}
	}

	c.Status(http.StatusNotFound)
}

func requestLogger(logger interfaces.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(started).String(),
		)
	}
}
