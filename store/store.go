// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"

	"github.com/danielhkuo/starvote/models"
)

// Store holds the candidate list for the lifetime of the process.
// Candidates are returned in seed order.
type Store interface {
	// Vote adds exactly one vote to the candidate. An unknown id is not an
	// error; applied reports whether a candidate matched.
	Vote(ctx context.Context, id int) (applied bool, err error)
	Candidates(ctx context.Context) ([]models.Candidate, error)
	Candidate(ctx context.Context, id int) (models.Candidate, bool, error)
	Close() error
}
