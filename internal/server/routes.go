package server

import (
	"log/slog"
	"net/http"

	"planets-api/internal/planet"
	planetHandlers "planets-api/internal/planet/handlers"
	serverHandlers "planets-api/internal/server/handlers"
	"planets-api/internal/shared/config"
	siteHandlers "planets-api/internal/site/handlers"
)

// Routes is the application context handed to the router: everything a
// handler needs is built once at startup and reached through it.
type Routes struct {
	planetService *planet.Service
	environment   string
	site          config.SiteConfig
	logger        *slog.Logger
}

func NewRoutes(planetService *planet.Service, environment string, site config.SiteConfig, logger *slog.Logger) *Routes {
	return &Routes{
		planetService: planetService,
		environment:   environment,
		site:          site,
		logger:        logger,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := r.logger.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	siteHandler := siteHandlers.NewSiteHandler(r.site)
	planetHandler := planetHandlers.NewPlanetHandler(r.planetService)

	mux.HandleFunc("GET /{$}", siteHandler.Index)
	mux.HandleFunc("GET /api-docs", siteHandler.APIDocs)
	mux.Handle("GET /os", serverHandlers.NewOSHandler(r.environment))
	mux.Handle("GET /live", serverHandlers.Live)
	mux.Handle("GET /ready", serverHandlers.Ready)
	mux.HandleFunc("POST /planet", planetHandler.Lookup)

	mux.Handle("/", siteHandler.Static())

	logger.Info("Routes configured successfully",
		"endpoints", []string{"/", "/api-docs", "/os", "/live", "/ready", "/planet"},
		"static_dir", r.site.StaticDir,
	)

	return mux
}
