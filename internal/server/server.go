// Package server exposes the worksheet dispatcher over HTTP for the page
// renderer.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/worksheetz/internal/config"
	"github.com/abhisek/worksheetz/internal/worksheet"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	cfg     config.ServerConfig
	engine  *gin.Engine
	log     *zap.Logger
	version string
}

func New(cfg config.ServerConfig, d *worksheet.Dispatcher, log *zap.Logger, version string) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{cfg: cfg, engine: gin.New(), log: log, version: version}

	// recovery must wrap everything else
	s.engine.Use(RecoverWithSentry(log))
	s.engine.Use(SentryMiddleware())
	s.engine.Use(RequestTracking(log))

	h := &handler{dispatcher: d, version: version}
	s.engine.GET("/health", h.health)

	api := s.engine.Group("/api")
	{
		api.GET("/modules", h.modules)
		api.POST("/worksheets", h.generate)
		api.POST("/worksheets/bundle", h.bundle)
	}
	return s
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", zap.String("addr", s.cfg.Addr), zap.String("version", s.version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
