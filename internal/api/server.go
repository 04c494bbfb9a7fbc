// Package api exposes the core engine operations over HTTP for the
// dashboard and file-manager collaborators. It owns no extraction logic.
package api

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"contactscraper/internal/config"
	"contactscraper/internal/monitoring"
	"contactscraper/internal/scraper"
	"contactscraper/internal/storage"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	cfg        *config.Config
	store      *storage.Store
	metrics    *monitoring.Metrics
	logger     *zap.Logger
	httpServer *http.Server

	mu   sync.Mutex
	runs map[string]*run
}

// run tracks one background extraction session started via the API.
type run struct {
	session *scraper.Session

	mu     sync.Mutex
	status string // "running", "completed", "failed"
	errMsg string
}

func NewServer(cfg *config.Config, st *storage.Store, m *monitoring.Metrics, l *zap.Logger) *Server {
	return &Server{
		cfg:     cfg,
		store:   st,
		metrics: m,
		logger:  l,
		runs:    make(map[string]*run),
	}
}

func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%s", s.cfg.ServerPort),
		Handler:      s.setupRouter(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
