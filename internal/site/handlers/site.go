package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path"

	"planets-api/internal/shared/config"
	apperrors "planets-api/internal/shared/errors"
	"planets-api/internal/shared/response"
	"planets-api/internal/site"
)

type SiteHandler struct {
	cfg config.SiteConfig
}

func NewSiteHandler(cfg config.SiteConfig) *SiteHandler {
	return &SiteHandler{cfg: cfg}
}

// Index serves GET / by rendering the index template with the current
// environment values. The file is read on every request.
func (h *SiteHandler) Index(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "index")

	data, err := os.ReadFile(h.cfg.IndexPath)
	if err != nil {
		response.PlainError(w, r, logger,
			apperrors.WrapInternal(fmt.Sprintf("Error reading %s", h.cfg.IndexPath), err),
			http.StatusInternalServerError, "Error loading HTML")
		return
	}

	response.HTML(w, http.StatusOK, site.Render(string(data), site.ValuesFromEnv()))
}

// APIDocs serves GET /api-docs with the OpenAPI document. The file is
// validated and sent as stored, so numbers keep their exact text.
func (h *SiteHandler) APIDocs(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "api_docs")

	data, err := os.ReadFile(h.cfg.APIDocsPath)
	if err != nil {
		response.PlainError(w, r, logger,
			apperrors.WrapInternal("Error reading file", err),
			http.StatusInternalServerError, "Error reading file")
		return
	}

	var doc json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		response.PlainError(w, r, logger,
			apperrors.WrapInternal("Error parsing file", err),
			http.StatusInternalServerError, "Error parsing file")
		return
	}

	response.Success(w, http.StatusOK, doc)
}

// Static serves files from the configured static directory. Directories are
// only served through their index.html; listings are never generated.
func (h *SiteHandler) Static() http.Handler {
	return http.FileServer(noListingFS{http.Dir(h.cfg.StaticDir)})
}

type noListingFS struct {
	fs http.FileSystem
}

func (n noListingFS) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if !info.IsDir() {
		return f, nil
	}

	index, err := n.fs.Open(path.Join(name, "index.html"))
	if err != nil {
		f.Close()
		return nil, os.ErrNotExist
	}
	index.Close()

	return f, nil
}
