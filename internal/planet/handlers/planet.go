package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"planets-api/internal/planet"
	apperrors "planets-api/internal/shared/errors"
	"planets-api/internal/shared/response"
)

// LookupErrorBody is returned, with status 200, whenever the id cannot be
// cast or the store query fails. Existing clients match on this string.
const LookupErrorBody = "Error in Planet Data"

const maxBodyBytes = 100 << 10

type PlanetHandler struct {
	service *planet.Service
}

func NewPlanetHandler(service *planet.Service) *PlanetHandler {
	return &PlanetHandler{service: service}
}

// Lookup serves POST /planet.
func (h *PlanetHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "planet_lookup")

	req, err := decodeLookup(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		response.Error(w, r, logger, apperrors.WrapValidation("invalid request body", err))
		return
	}

	id, err := req.PlanetID()
	if errors.Is(err, planet.ErrUnmatchableID) {
		w.WriteHeader(http.StatusOK)
		return
	}
	if err != nil {
		logger.Error("Error in Planet Data", "error", err)
		response.Text(w, http.StatusOK, LookupErrorBody)
		return
	}

	found, err := h.service.GetByID(ctx, id)
	if err != nil {
		logger.Error("Error in Planet Data", "error", err, "planet_id", id)
		response.Text(w, http.StatusOK, LookupErrorBody)
		return
	}

	if found == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	response.Success(w, http.StatusOK, found)
}

// decodeLookup reads a single JSON value from body. An empty body is an empty
// request; anything after the first value is rejected.
func decodeLookup(body io.Reader) (planet.LookupRequest, error) {
	var req planet.LookupRequest

	dec := json.NewDecoder(body)
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return req, nil
		}
		return req, err
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return req, errors.New("unexpected data after JSON body")
	}

	return req, nil
}
