// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"sync"

	"github.com/danielhkuo/starvote/models"
)

// Memory is the default in-process store.
type Memory struct {
	mu         sync.RWMutex
	candidates []models.Candidate
}

func NewMemory(seed []models.Candidate) *Memory {
	cs := make([]models.Candidate, len(seed))
	copy(cs, seed)
	return &Memory{candidates: cs}
}

func (m *Memory) Vote(_ context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.candidates {
		if m.candidates[i].ID == id {
			m.candidates[i].Votes++
			return true, nil
		}
	}
	return false, nil
}

func (m *Memory) Candidates(_ context.Context) ([]models.Candidate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cs := make([]models.Candidate, len(m.candidates))
	copy(cs, m.candidates)
	return cs, nil
}

func (m *Memory) Candidate(_ context.Context, id int) (models.Candidate, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, c := range m.candidates {
		if c.ID == id {
			return c, true, nil
		}
	}
	return models.Candidate{}, false, nil
}

func (m *Memory) Close() error { return nil }
