// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package aitext

import (
	"context"
	"errors"
	"math/rand/v2"
)

// DefaultModel is the text model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

var ErrNoAPIKey = errors.New("no API key configured")

// Request is one text generation call.
type Request struct {
	Model           string
	Prompt          string
	Temperature     *float32 // nil leaves the provider default
	MaxOutputTokens int32    // 0 leaves the provider default
}

// Generator sends a prompt to a text model.
// An empty string with a nil error means the model returned no text.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Unavailable is used when no API key is configured. Every call fails,
// so callers always get their fallback text.
type Unavailable struct{}

func (Unavailable) Generate(context.Context, Request) (string, error) {
	return "", ErrNoAPIKey
}

// Rand picks an index in [0, n).
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }
