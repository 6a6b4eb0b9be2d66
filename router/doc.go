// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the StarVote display.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(arena, hub, cfg)

# Endpoints

Health:

	GET /health

Page:

	GET / - Live display page

Candidates:

	GET  /api/candidates           - Candidates in display order
	POST /api/candidates/{id}/votes - Add one vote
	GET  /api/ranking              - Leaderboard
	GET  /api/state                - Full snapshot

Cheers:

	GET  /api/cheers        - Latest cheers, newest first
	POST /api/cheers        - Post a fan cheer
	POST /api/cheers/slogan - Generate an AI slogan for a candidate

Commentary:

	GET  /api/commentary         - Current commentary line
	POST /api/commentary/refresh - Refresh it now

Sharing:

	GET /api/share - Page URL and QR image URL

Live feed:

	GET /ws - WebSocket stream of state events

Every route except /health is logged. Everything except /health and /ws
is gzip-compressed when the client accepts it.
*/
package router
