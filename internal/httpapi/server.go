// Package httpapi exposes the contact book over HTTP. It is a thin
// shell: request values are parsed into primitives, handed to the core,
// and the core's output is rendered as JSON.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devbook/devbook/devbook"
	"github.com/devbook/devbook/devbook/storage"
)

type Server struct {
	store  *devbook.Store
	snap   storage.Adapter // nil when no snapshot backend is configured
	log    *slog.Logger
	engine *gin.Engine
}

// New wires the routes onto a fresh engine. snap may be nil.
func New(store *devbook.Store, snap storage.Adapter, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		store:  store,
		snap:   snap,
		log:    logger,
		engine: gin.New(),
	}
	s.engine.Use(gin.Recovery())
	s.registerRoutes()
	return s
}

// Handler returns the underlying http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Run(addr string) error {
	s.log.Info("starting devbook HTTP server", "addr", addr)
	return s.engine.Run(addr)
}

// LoadSnapshot fills the store from the configured snapshot backend.
// It is a no-op without one.
func (s *Server) LoadSnapshot(ctx context.Context) error {
	if s.snap == nil {
		return nil
	}
	dump, err := s.snap.Load(ctx)
	if err != nil {
		return err
	}
	if err := s.store.Load(dump); err != nil {
		return err
	}
	s.log.Info("loaded snapshot", "backend", s.snap.Backend(), "ref", s.snap.Ref(), "records", s.store.Len())
	return nil
}
