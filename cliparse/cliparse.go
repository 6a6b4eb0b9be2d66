// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/danielhkuo/starvote/aitext"
	"github.com/danielhkuo/starvote/commentary"
)

// Store types
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

type Config struct {
	Port               int
	StoreType          string
	DatabaseURL        string
	SeedFile           string
	APIKey             string
	Model              string
	CommentaryInterval time.Duration
	CommentaryPolicy   commentary.Policy
	AITimeout          time.Duration
	PublicURL          string
	LogLevel           slog.Level
}

// ParseFlags validates flags and fills unset values from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var policy, logLevel string

	fs := flag.NewFlagSet("starvote", flag.ContinueOnError)

	// Network config
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.PublicURL, "public-url", "", "Public page URL used for sharing")

	// Candidate store
	fs.StringVar(&cfg.StoreType, "t", "", "Store type (memory, sqlite or postgres)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sqlite or postgres store)")
	fs.StringVar(&cfg.SeedFile, "seed", "", "Candidate seed YAML file")

	// AI text (prefer env for the key)
	fs.StringVar(&cfg.APIKey, "api-key", "", "Gemini API key (prefer env)")
	fs.StringVar(&cfg.Model, "model", "", "Gemini model")
	fs.DurationVar(&cfg.CommentaryInterval, "commentary-interval", 0, "Time between commentary refreshes")
	fs.StringVar(&policy, "commentary-policy", "", "Commentary overwrite policy (last-settled or last-issued)")
	fs.DurationVar(&cfg.AITimeout, "ai-timeout", -1, "Per-call AI timeout, 0 disables")

	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.PublicURL == "" {
		cfg.PublicURL = os.Getenv("PUBLIC_URL")
	}

	if cfg.StoreType == "" {
		cfg.StoreType = os.Getenv("STORE_TYPE")
		if cfg.StoreType == "" {
			cfg.StoreType = StoreMemory
		}
	}
	switch cfg.StoreType {
	case StoreMemory, StoreSQLite, StorePostgres:
	default:
		return Config{}, fmt.Errorf("invalid store type %q", cfg.StoreType)
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.StoreType == StorePostgres && cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required for postgres store (use -d or DATABASE_URL env)")
	}
	if cfg.SeedFile == "" {
		cfg.SeedFile = os.Getenv("SEED_FILE")
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("API_KEY")
	}
	if cfg.Model == "" {
		cfg.Model = os.Getenv("GEMINI_MODEL")
		if cfg.Model == "" {
			cfg.Model = aitext.DefaultModel
		}
	}

	if cfg.CommentaryInterval == 0 {
		d, err := durationEnv("COMMENTARY_INTERVAL", commentary.DefaultInterval)
		if err != nil {
			return Config{}, err
		}
		cfg.CommentaryInterval = d
	}
	if cfg.CommentaryInterval <= 0 {
		return Config{}, errors.New("commentary interval must be positive")
	}

	if policy == "" {
		policy = os.Getenv("COMMENTARY_POLICY")
	}
	p, err := commentary.ParsePolicy(policy)
	if err != nil {
		return Config{}, err
	}
	cfg.CommentaryPolicy = p

	if cfg.AITimeout < 0 {
		d, err := durationEnv("AI_TIMEOUT", 0)
		if err != nil {
			return Config{}, err
		}
		cfg.AITimeout = d
	}

	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
	}
	if logLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
			return Config{}, fmt.Errorf("invalid log level %q", logLevel)
		}
	}

	return cfg, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable: %w", key, err)
	}
	return d, nil
}
