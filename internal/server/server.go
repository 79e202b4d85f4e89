// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package server exposes schema rendering over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hashicorp/go-hclog"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dacolabs/xsdvis/internal/config"
	"github.com/dacolabs/xsdvis/internal/lang"
	"github.com/dacolabs/xsdvis/internal/translate"
	"github.com/dacolabs/xsdvis/internal/xsd"
)

// Server renders submitted schemas into any registered format.
//
// Parsed schemas are cached by language and content hash. Cached values are
// shared between requests and never modified after parsing.
type Server struct {
	cfg     config.Server
	strings *lang.Service
	formats translate.Register
	cache   *lru.Cache[string, *xsd.Schema]
	metrics *metrics
	logger  hclog.Logger
	started time.Time
	router  chi.Router
	server  *http.Server
}

// New builds a Server. s provides the default display language; each request
// may select another one without affecting s.
func New(cfg config.Server, formats translate.Register, s *lang.Service, logger hclog.Logger) (*Server, error) {
	cache, err := lru.New[string, *xsd.Schema](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create schema cache: %w", err)
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	srv := &Server{
		cfg:     cfg,
		strings: s,
		formats: formats,
		cache:   cache,
		metrics: newMetrics(),
		logger:  logger.Named("server"),
		started: time.Now(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(srv.logRequests)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/render", srv.render)
		r.Get("/formats", srv.listFormats)
	})
	// register system endpoints
	r.Route("/system", func(r chi.Router) {
		r.Get("/metrics", promhttp.HandlerFor(srv.metrics.registry, promhttp.HandlerOpts{}).ServeHTTP)
		r.Get("/status", srv.status)
	})
	srv.router = r

	srv.server = &http.Server{
		ReadHeaderTimeout: 3 * time.Second,
		Handler:           r,
		Addr:              cfg.Addr,
	}
	return srv, nil
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on the configured address and serves in the background.
func (s *Server) Start() (net.Listener, error) {
	listener, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	s.logger.Info("listening", "addr", listener.Addr().String())
	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server stopped", "err", err)
		}
	}()
	return listener, nil
}

// Stop shuts the server down, waiting up to five seconds for requests.
func (s *Server) Stop(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		s.logger.Error("failed to stop server", "err", err)
	}
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	if _, err := s.Start(); err != nil {
		return err
	}
	<-ctx.Done()
	s.logger.Info("shutting down")
	s.Stop(context.WithoutCancel(ctx))
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"requestId", middleware.GetReqID(r.Context()))
	})
}
