// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/starvote/arena"
	"github.com/danielhkuo/starvote/cliparse"
	"github.com/danielhkuo/starvote/handlers"
	"github.com/danielhkuo/starvote/live"
	"github.com/danielhkuo/starvote/middleware"
)

func NewRouter(a *arena.Arena, hub *live.Hub, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	candidateHandler := handlers.NewCandidateHandler(a)
	cheerHandler := handlers.NewCheerHandler(a)
	commentaryHandler := handlers.NewCommentaryHandler(a)
	shareHandler := handlers.NewShareHandler(cfg)
	pageHandler := handlers.NewPageHandler(a, cfg)
	liveHandler := handlers.NewLiveHandler(a, hub)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Candidates and votes
	mux.HandleFunc("GET /api/candidates", route(candidateHandler.ListCandidates))
	mux.HandleFunc("POST /api/candidates/{id}/votes", route(candidateHandler.Vote))
	mux.HandleFunc("GET /api/ranking", route(candidateHandler.GetRanking))
	mux.HandleFunc("GET /api/state", route(candidateHandler.GetState))

	// Cheers and slogans
	mux.HandleFunc("GET /api/cheers", route(cheerHandler.ListCheers))
	mux.HandleFunc("POST /api/cheers", route(cheerHandler.PostCheer))
	mux.HandleFunc("POST /api/cheers/slogan", route(cheerHandler.GenerateSlogan))

	// Commentary
	mux.HandleFunc("GET /api/commentary", route(commentaryHandler.GetCommentary))
	mux.HandleFunc("POST /api/commentary/refresh", route(commentaryHandler.RefreshCommentary))

	// Sharing
	mux.HandleFunc("GET /api/share", route(shareHandler.GetShare))

	// Live feed (not compressed, the connection is hijacked)
	mux.HandleFunc("GET /ws", middleware.WithLogging(liveHandler.Subscribe))

	// Display page
	mux.HandleFunc("GET /{$}", route(pageHandler.Index))

	return mux
}

func route(h http.HandlerFunc) http.HandlerFunc {
	return middleware.WithLogging(middleware.WithCompression(h))
}
