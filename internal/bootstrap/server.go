// Package bootstrap owns HTTP server lifecycle: serve until the signal
// context is canceled, then drain with a shutdown deadline.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// Run serves handler on addr and blocks until ctx is canceled or the
// server fails.
func Run(ctx context.Context, addr string, handler http.Handler, log *zap.SugaredLogger) error {
	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()
	log.Infow("http server started", "addr", addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		log.Infow("http server stopped", "addr", addr)
		return nil
	}
}
