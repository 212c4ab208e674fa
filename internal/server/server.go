package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"planets-api/internal/middleware"
	"planets-api/internal/shared/config"
)

const shutdownTimeout = 10 * time.Second

// Handler wraps the routes in the middleware chain: request logging,
// panic recovery, CORS, then rate limiting.
func Handler(ctx context.Context, cfg *config.Config, routes *Routes) http.Handler {
	cors := middleware.NewCORS(cfg.CORS)
	limiter := middleware.NewRateLimiter(ctx, cfg.RateLimit)

	return middleware.Chain(routes.Setup(),
		middleware.RequestLogger,
		middleware.Recovery,
		cors.Middleware,
		limiter.Middleware,
	)
}

// Run serves handler on cfg's address until ctx is cancelled, then shuts
// down gracefully.
func Run(ctx context.Context, cfg *config.Config, handler http.Handler) error {
	logger := slog.With("component", "server")

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server successfully running", "port", cfg.Server.Port, "environment", cfg.Server.Environment)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}
