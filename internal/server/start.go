package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nfrund/hireboard/internal/notify"
	"github.com/nfrund/hireboard/internal/pubsub"
	"github.com/nfrund/hireboard/internal/workspace"
	"github.com/samber/do/v2"
)

const (
	sweepInterval   = time.Minute
	shutdownTimeout = 10 * time.Second
)

// Start runs the HTTP server and the background tasks until an interrupt or
// terminate signal arrives, then shuts everything down.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := s.RunBackground(ctx); err != nil {
		return err
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.Cfg.Addr)
		if err := s.E.Start(s.Cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

// RunBackground subscribes the activity feed and starts the idle workspace
// sweeper. Both stop with ctx.
func (s *Server) RunBackground(ctx context.Context) error {
	feed := do.MustInvoke[*notify.Feed](s.injector)
	if err := feed.Run(ctx, do.MustInvoke[*pubsub.Bus](s.injector)); err != nil {
		return err
	}
	go do.MustInvoke[*workspace.Registry](s.injector).Run(ctx, sweepInterval)
	return nil
}

// Shutdown stops accepting requests, then drops every workspace and closes
// the bus.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.E.Shutdown(ctx)
	do.MustInvoke[*workspace.Registry](s.injector).Close()
	if cerr := do.MustInvoke[*pubsub.Bus](s.injector).Close(); cerr != nil {
		s.logger.Warn("close bus", "error", cerr)
	}
	s.injector.Shutdown()
	return err
}
