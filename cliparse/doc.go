// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags and Environment Variables

Flags fall back to environment variables:

	-p                     PORT                 (default 3318)
	-public-url            PUBLIC_URL
	-t                     STORE_TYPE           (memory, sqlite, postgres; default memory)
	-d                     DATABASE_URL         (required for postgres)
	-seed                  SEED_FILE            (default: built-in candidates)
	-api-key               GEMINI_API_KEY, API_KEY
	-model                 GEMINI_MODEL         (default gemini-2.5-flash)
	-commentary-interval   COMMENTARY_INTERVAL  (default 30s)
	-commentary-policy     COMMENTARY_POLICY    (last-settled or last-issued)
	-ai-timeout            AI_TIMEOUT           (default 0, no timeout)
	-log-level             LOG_LEVEL            (default info)

CLI flags take precedence over environment variables. main loads a .env
file, if present, before parsing.

# Validation

ParseFlags returns an error for unknown store types, a postgres store
without a database URL, unparsable durations, a non-positive commentary
interval, an unknown commentary policy, or an unknown log level.

A missing API key is not an error: AI text then always falls back to the
built-in sentences.
*/
package cliparse
