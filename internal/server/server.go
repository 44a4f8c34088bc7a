// Package server exposes the itemd service over HTTP.
//
// The transport layer is deliberately thin: handlers translate between
// HTTP and the application facade, and every error maps to the standard
// ErrorResponse body. The batch endpoint (GET /api/items/process) returns
// the full processed set on success and a uniform internal error on any
// batch failure.
package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/bft-labs/itemd/internal/app"
	"github.com/bft-labs/itemd/internal/ports"
)

// ShutdownTimeout is the maximum time to wait for graceful shutdown.
const ShutdownTimeout = 30 * time.Second

// Server serves the itemd HTTP API.
type Server struct {
	svc       *app.Service
	logger    ports.Logger
	lifecycle *lifecycle

	httpSrv *http.Server
	ln      net.Listener
}

// New creates a server bound to addr.
func New(addr string, svc *app.Service, logger ports.Logger) *Server {
	s := &Server{
		svc:       svc,
		logger:    logger,
		lifecycle: newLifecycle(logger),
	}
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.buildRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Start binds the listener and begins serving in the background.
// Returns domain.ErrNotRunning-family errors on invalid transitions.
func (s *Server) Start() error {
	if err := s.lifecycle.transitionTo(StateStarting, "start requested"); err != nil {
		return err
	}

	ln, err := net.Listen("tcp", s.httpSrv.Addr)
	if err != nil {
		_ = s.lifecycle.transitionTo(StateCrashed, "listen failed")
		return err
	}
	s.ln = ln

	if err := s.lifecycle.transitionTo(StateRunning, "listener ready"); err != nil {
		_ = ln.Close()
		return err
	}

	go func() {
		if err := s.httpSrv.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.Error("serve failed", ports.Err(err))
			_ = s.lifecycle.transitionTo(StateCrashed, "serve failed")
		}
	}()

	s.logger.Info("server started", ports.String("addr", ln.Addr().String()))
	return nil
}

// Stop drains in-flight requests and shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if err := s.lifecycle.transitionTo(StateStopping, "stop requested"); err != nil {
		return err
	}

	if err := s.httpSrv.Shutdown(ctx); err != nil {
		_ = s.lifecycle.transitionTo(StateCrashed, "shutdown failed")
		return err
	}

	s.logger.Info("server stopped")
	return s.lifecycle.transitionTo(StateStopped, "shutdown complete")
}

// State returns the server's lifecycle state.
func (s *Server) State() State {
	return s.lifecycle.State()
}

// Addr returns the bound listener address, or the configured address
// before Start.
func (s *Server) Addr() string {
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.httpSrv.Addr
}
