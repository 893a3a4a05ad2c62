// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	json "github.com/goccy/go-json"
)

// RoundsHandler handles the round lifecycle requests.
type RoundsHandler struct {
	deps Dependencies
}

// NewRoundsHandler creates a new rounds handler.
func NewRoundsHandler(deps Dependencies) *RoundsHandler {
	return &RoundsHandler{deps: deps}
}

// startRoundRequest mirrors the OpenAPI schema for POST /rounds.
type startRoundRequest struct {
	Categories []string `json:"categories,omitempty"`
	Length     int      `json:"length,omitempty"`
}

type answerRequest struct {
	OptionID string `json:"option_id"`
}

type saveScoreRequest struct {
	Name string `json:"name"`
}

// HandleStartRound handles POST /rounds requests.
func (h *RoundsHandler) HandleStartRound(w http.ResponseWriter, r *http.Request) {
	var req startRoundRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
	}
	view, err := h.deps.StartRound(r.Context(), req.Categories, req.Length)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// HandleGetRound handles GET /rounds/{id} requests.
func (h *RoundsHandler) HandleGetRound(w http.ResponseWriter, r *http.Request) {
	view, err := h.deps.GetRound(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// HandleAnswer handles POST /rounds/{id}/answer requests.
func (h *RoundsHandler) HandleAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	outcome, err := h.deps.SubmitAnswer(r.Context(), r.PathValue("id"), req.OptionID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}

// HandleAdvance handles POST /rounds/{id}/advance requests.
func (h *RoundsHandler) HandleAdvance(w http.ResponseWriter, r *http.Request) {
	view, err := h.deps.Advance(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// HandleSaveScore handles POST /rounds/{id}/score requests.
func (h *RoundsHandler) HandleSaveScore(w http.ResponseWriter, r *http.Request) {
	var req saveScoreRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
	}
	placement, err := h.deps.SaveScore(r.Context(), r.PathValue("id"), req.Name)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, placement)
}
