package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"bookingdesk/config"

	"go.uber.org/zap"
)

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails, then shuts down gracefully.
func Run(ctx context.Context, cfg *config.Config, handler http.Handler, log *zap.SugaredLogger) error {
	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Infow("http server started", "address", cfg.HTTP.Address)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		log.Infow("http server stopped")
		return nil
	}
}
