// Package server provides the local development HTTP server.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// shutdownGrace bounds how long in-flight requests may finish after
// the context is canceled.
const shutdownGrace = 5 * time.Second

// Handler serves the generated site from dir.
func Handler(dir string) http.Handler {
	return http.FileServer(http.Dir(dir))
}

// Serve serves the generated site from dir on addr until the context
// is canceled. Returns nil on clean shutdown.
func Serve(ctx context.Context, addr, dir string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           Handler(dir),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
