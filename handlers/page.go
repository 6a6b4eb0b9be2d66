// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/starvote/arena"
	"github.com/danielhkuo/starvote/cliparse"
	"github.com/danielhkuo/starvote/models"
	"github.com/danielhkuo/starvote/ranking"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"comma": func(n int) string { return humanize.Comma(int64(n)) },
	"percent": func(f float64) string {
		return humanize.FtoaWithDigits(f*100, 1) + "%"
	},
	"clock": func(m models.CheerMessage) string { return m.Timestamp.Format("15:04:05") },
}).ParseFS(templateFS, "templates/index.html"))

// EmptyCheers is shown in place of the cheer log before anyone cheers
const EmptyCheers = "暂无助威，快来抢占沙发！"

type PageHandler struct {
	arena *arena.Arena
	cfg   cliparse.Config
}

func NewPageHandler(a *arena.Arena, cfg cliparse.Config) *PageHandler {
	return &PageHandler{arena: a, cfg: cfg}
}

type cardView struct {
	Candidate models.Candidate
	Rank      int
	Leading   bool
}

type pageView struct {
	Cards       []cardView
	Ranking     []models.Standing
	Cheers      []models.CheerMessage
	EmptyCheers string
	Commentary  string
	Share       models.ShareResponse
}

// Index handles GET /
// Renders cards in display order with their current rank
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	st, err := h.arena.Snapshot(r.Context())
	if err != nil {
		slog.Error("failed to snapshot state for page", "error", err)
		http.Error(w, "store error", http.StatusInternalServerError)
		return
	}

	view := pageView{
		Ranking:     st.Ranking,
		Cheers:      st.Cheers,
		EmptyCheers: EmptyCheers,
		Commentary:  st.Commentary.Text,
		Share:       ShareLinks(r, h.cfg),
	}
	for _, c := range st.Candidates {
		rank := ranking.RankOf(st.Ranking, c.ID)
		view.Cards = append(view.Cards, cardView{Candidate: c, Rank: rank, Leading: rank == 1})
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, view); err != nil {
		slog.Error("failed to render page", "error", err)
		http.Error(w, "render error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
