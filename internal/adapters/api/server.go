package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/karbobc/workday/internal/core/domain"
	"github.com/karbobc/workday/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
)

// Server is the HTTP front of the lookup service.
type Server struct {
	server   *http.Server
	listener net.Listener
	logger   ports.Logger
}

// NewRouter wires h behind the recovery and request logging middleware.
func NewRouter(h *Handler, logger ports.Logger) http.Handler {
	router := httprouter.New()
	h.RegisterRoutes(router)

	var handler http.Handler = router
	handler = RequestLogging(logger)(handler)
	handler = Recovery(logger)(handler)
	return handler
}

// NewServer creates a Server listening on addr once Listen is called.
func NewServer(addr string, handler http.Handler, logger ports.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
			ReadTimeout:       readTimeout,
			WriteTimeout:      writeTimeout,
			IdleTimeout:       idleTimeout,
		},
		logger: logger,
	}
}

// Listen binds the listening socket.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrServerFailed.Error()), "addr", s.server.Addr)
	}
	s.listener = ln
	return nil
}

// Addr returns the bound address, or the configured one before Listen.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.server.Addr
}

// Serve accepts connections until Shutdown. It binds first when Listen was not called.
func (s *Server) Serve() error {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	s.logger.Info("http server listening", "addr", s.Addr())
	if err := s.server.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return zerr.With(zerr.Wrap(err, domain.ErrServerFailed.Error()), "addr", s.Addr())
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		_ = s.server.Close()
		return zerr.Wrap(err, "http server shutdown")
	}
	s.logger.Info("http server stopped")
	return nil
}
