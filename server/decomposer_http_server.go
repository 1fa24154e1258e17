package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type DecomposerHttpServer struct {
	addr            string
	shutdownTimeout time.Duration
	router          *Router
	muxRouter       *mux.Router
}

func NewDecomposerHttpServer(addr string, shutdownTimeout time.Duration, router *Router, muxRouter *mux.Router) *DecomposerHttpServer {
	return &DecomposerHttpServer{
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
		router:          router,
		muxRouter:       muxRouter,
	}
}

// Start serves until ctx is cancelled, then shuts down gracefully within the shutdown
// timeout.
func (s *DecomposerHttpServer) Start(ctx context.Context) error {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.muxRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting server", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("unable to serve on %s, %w", s.addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown, %w", err)
	}
	slog.Info("server exiting")
	return nil
}
