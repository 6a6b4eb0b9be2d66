// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/starvote/arena"
	"github.com/danielhkuo/starvote/middleware"
	"github.com/danielhkuo/starvote/models"
)

type CandidateHandler struct {
	arena *arena.Arena
}

func NewCandidateHandler(a *arena.Arena) *CandidateHandler {
	return &CandidateHandler{arena: a}
}

// ListCandidates handles GET /api/candidates
// Candidates come back in display order, not ranked
func (h *CandidateHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	cs, err := h.arena.Candidates(r.Context())
	if err != nil {
		slog.Error("failed to list candidates", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Store error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, cs)
}

// GetRanking handles GET /api/ranking
func (h *CandidateHandler) GetRanking(w http.ResponseWriter, r *http.Request) {
	standings, err := h.arena.Standings(r.Context())
	if err != nil {
		slog.Error("failed to rank candidates", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Store error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, standings)
}

// Vote handles POST /api/candidates/{id}/votes
// A vote for an unknown candidate is accepted and reported as not applied
func (h *CandidateHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate id must be an integer")
		return
	}

	c, applied, err := h.arena.Vote(r.Context(), id)
	if err != nil {
		slog.Error("failed to record vote", "error", err, "candidate_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	resp := models.VoteResponse{Applied: applied}
	if applied {
		resp.Candidate = &c
		slog.Debug("vote recorded", "candidate_id", id, "votes", c.Votes, "remote", middleware.GetClientIP(r))
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetState handles GET /api/state
func (h *CandidateHandler) GetState(w http.ResponseWriter, r *http.Request) {
	st, err := h.arena.Snapshot(r.Context())
	if err != nil {
		slog.Error("failed to snapshot state", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Store error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, st)
}
