// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cheer

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/starvote/models"
)

// Capacity is the number of cheers the log retains.
const Capacity = 5

// Log keeps the most recent cheers, newest first.
type Log struct {
	mu      sync.Mutex
	entries []models.CheerMessage
	now     func() time.Time
}

type Option func(*Log)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(l *Log) { l.now = now }
}

func NewLog(opts ...Option) *Log {
	l := &Log{
		entries: make([]models.CheerMessage, 0, Capacity),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Push records a cheer and evicts the oldest entry beyond Capacity.
func (l *Log) Push(candidateName, text string) models.CheerMessage {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Stamped under the lock so timestamps follow log order
	msg := models.CheerMessage{
		ID:            uuid.NewString(),
		CandidateName: candidateName,
		Message:       text,
		Timestamp:     l.now(),
	}
	l.entries = append(l.entries, models.CheerMessage{})
	copy(l.entries[1:], l.entries)
	l.entries[0] = msg
	if len(l.entries) > Capacity {
		l.entries = l.entries[:Capacity]
	}
	return msg
}

// Entries returns a copy of the log, newest first.
func (l *Log) Entries() []models.CheerMessage {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.CheerMessage, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
