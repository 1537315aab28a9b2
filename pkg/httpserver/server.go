package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/entityforms/pkg/logger"
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for lifecycle events. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// Server runs an http.Server until its context is cancelled, then shuts it
// down within Config.ShutdownTimeout.
type Server struct {
	cfg    Config
	logger *slog.Logger
	srv    *http.Server
}

// New returns a server for handler. A nil handler serves 404 for every path.
func New(cfg Config, handler http.Handler, opts ...Option) *Server {
	cfg = cfg.withDefaults()
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	s := &Server{cfg: cfg, logger: logger.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	s.srv = &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(s.logger.Handler(), slog.LevelError),
	}
	return s
}

// Run listens on Config.Addr and blocks until ctx is done or serving fails.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return errors.Join(ErrStart, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener, which it closes on return.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.InfoContext(ctx, "http server started", slog.String("addr", ln.Addr().String()))
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Join(ErrStart, err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			return errors.Join(ErrShutdown, err)
		}
		s.logger.InfoContext(ctx, "http server stopped")
		return nil
	})

	return g.Wait()
}
