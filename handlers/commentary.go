// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/starvote/arena"
	"github.com/danielhkuo/starvote/middleware"
)

type CommentaryHandler struct {
	arena *arena.Arena
}

func NewCommentaryHandler(a *arena.Arena) *CommentaryHandler {
	return &CommentaryHandler{arena: a}
}

// GetCommentary handles GET /api/commentary
func (h *CommentaryHandler) GetCommentary(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.arena.Commentary())
}

// RefreshCommentary handles POST /api/commentary/refresh
// Responds with the slot contents after the refresh, which may still be
// the previous line when there is nothing to compare
func (h *CommentaryHandler) RefreshCommentary(w http.ResponseWriter, r *http.Request) {
	h.arena.RefreshCommentary(r.Context())
	middleware.JSONResponse(w, http.StatusOK, h.arena.Commentary())
}
