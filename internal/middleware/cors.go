package middleware

import (
	"log/slog"
	"net/http"

	"planets-api/internal/shared/config"

	"github.com/rs/cors"
)

type CORSMiddleware struct {
	*cors.Cors
}

var corsMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}

func NewCORS(cfg config.CORSConfig) *CORSMiddleware {
	logger := slog.With("component", "cors", "operation", "setup")

	corsConfig := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: corsMethods,
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		Debug:          cfg.Debug,
	})

	logger.Info("CORS middleware configured",
		"allowed_origins", cfg.AllowedOrigins,
		"allowed_methods", corsMethods,
		"debug_mode", cfg.Debug,
	)

	return &CORSMiddleware{corsConfig}
}

func (c *CORSMiddleware) Middleware(h http.Handler) http.Handler {
	return c.Cors.Handler(h)
}
