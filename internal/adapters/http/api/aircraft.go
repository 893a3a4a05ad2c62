// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// AircraftHandler handles the Learn-Mode catalog requests.
type AircraftHandler struct {
	deps Dependencies
}

// NewAircraftHandler creates a new aircraft handler.
func NewAircraftHandler(deps Dependencies) *AircraftHandler {
	return &AircraftHandler{deps: deps}
}

// HandleListAircraft handles GET /aircraft?category=… requests.
func (h *AircraftHandler) HandleListAircraft(w http.ResponseWriter, r *http.Request) {
	records, err := h.deps.Aircraft(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

type aircraftImageResponse struct {
	ID       string `json:"id"`
	ImageURL string `json:"image_url"`
}

// HandleAircraftImage handles GET /aircraft/{id}/image requests.
func (h *AircraftHandler) HandleAircraftImage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	url, err := h.deps.AircraftImage(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, aircraftImageResponse{ID: id, ImageURL: url})
}
