// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the StarVote display server.

StarVote is a live popularity board for a fixed set of candidates. Fans
vote as often as they like, post cheers, and ask Gemini for slogans. A
commentary line about the top two is regenerated every 30 seconds.

# Starting the Server

No configuration is required. Without a Gemini key every AI call falls
back to canned text:

	go run .

With a key and a sqlite-backed store:

	GEMINI_API_KEY=... go run . -t sqlite

A .env file in the working directory is loaded first if present.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - STORE_TYPE (-t): memory, sqlite or postgres (default: memory)
  - DATABASE_URL (-d): Database URL, required for postgres
  - SEED_FILE (--seed): Candidate YAML, defaults to the built-in four
  - GEMINI_API_KEY or API_KEY (--api-key): Gemini API key
  - GEMINI_MODEL (--model): Model name (default: gemini-2.5-flash)
  - COMMENTARY_INTERVAL (--commentary-interval): Refresh period (default: 30s)
  - COMMENTARY_POLICY (--commentary-policy): last-settled or last-issued
  - AI_TIMEOUT (--ai-timeout): Per-call limit, 0 for none
  - PUBLIC_URL (--public-url): URL encoded in the share QR code
  - LOG_LEVEL (--log-level): debug, info, warn or error

Vote counts never survive a restart. The sql stores reseed their table
on startup.

# Architecture

  - arena: Ties the store, cheer log, commentary slot and AI service together
  - store: Candidate vote counts (memory or sql)
  - ranking: Stable leaderboard ordering
  - cheer: Bounded newest-first cheer log
  - aitext: Gemini prompts and fallbacks
  - commentary: Commentary slot and the periodic refresher
  - live: WebSocket fan-out hub
  - handlers, router, middleware: HTTP surface
  - seed, db, cliparse, models: Supporting packages

See package documentation for each component.
*/
package main
