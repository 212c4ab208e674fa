package handlers

import (
	"log/slog"
	"net/http"
	"os"

	"planets-api/internal/shared/response"
)

type OSResponse struct {
	OS  string `json:"os"`
	Env string `json:"env"`
}

type ProbeResponse struct {
	Status string `json:"status"`
}

// OSHandler reports the host name and the run-mode the process started in.
type OSHandler struct {
	environment string
	hostname    func() (string, error)
}

func NewOSHandler(environment string) *OSHandler {
	return &OSHandler{environment: environment, hostname: os.Hostname}
}

func (h *OSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	host, err := h.hostname()
	if err != nil {
		slog.Warn("Hostname lookup failed", "handler", "os", "error", err)
	}

	response.Success(w, http.StatusOK, OSResponse{OS: host, Env: h.environment})
}

// Probe answers liveness and readiness checks with a fixed status.
type Probe string

const (
	Live  Probe = "live"
	Ready Probe = "ready"
)

func (p Probe) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, ProbeResponse{Status: string(p)})
}
