// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/starvote/arena"
	"github.com/danielhkuo/starvote/middleware"
	"github.com/danielhkuo/starvote/models"
)

type CheerHandler struct {
	arena *arena.Arena
}

func NewCheerHandler(a *arena.Arena) *CheerHandler {
	return &CheerHandler{arena: a}
}

// ListCheers handles GET /api/cheers
func (h *CheerHandler) ListCheers(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.arena.Cheers())
}

// PostCheer handles POST /api/cheers
func (h *CheerHandler) PostCheer(w http.ResponseWriter, r *http.Request) {
	var req models.CheerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	msg, err := h.arena.Cheer(r.Context(), req.Message)
	if errors.Is(err, arena.ErrInvalidCheer) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to post cheer", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to post cheer")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, msg)
}

// GenerateSlogan handles POST /api/cheers/slogan
// The AI call never fails from the caller's side; a fallback slogan is
// logged instead
func (h *CheerHandler) GenerateSlogan(w http.ResponseWriter, r *http.Request) {
	var req models.SloganRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	msg, err := h.arena.GenerateSlogan(r.Context(), req.CandidateID)
	if errors.Is(err, arena.ErrCandidateNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}
	if err != nil {
		slog.Error("failed to generate slogan", "error", err, "candidate_id", req.CandidateID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to generate slogan")
		return
	}

	slog.Info("slogan generated", "candidate_id", req.CandidateID, "cheer_id", msg.ID)
	middleware.JSONResponse(w, http.StatusCreated, msg)
}
