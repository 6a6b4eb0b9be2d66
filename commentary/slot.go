// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commentary

import (
	"fmt"
	"sync"
	"time"
)

// Welcome is the commentary shown before the first refresh.
const Welcome = "欢迎来到星光投票竞技场！"

// Policy decides which of several overlapping refreshes wins the slot.
type Policy string

const (
	// LastSettled writes every result as it arrives. A slow, older request
	// can overwrite a newer one.
	LastSettled Policy = "last-settled"
	// LastIssued drops results from requests older than the one applied.
	LastIssued Policy = "last-issued"
)

func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case LastSettled, LastIssued:
		return Policy(s), nil
	case "":
		return LastSettled, nil
	}
	return "", fmt.Errorf("unknown commentary policy %q", s)
}

// Slot holds the current commentary line.
type Slot struct {
	mu        sync.Mutex
	policy    Policy
	text      string
	updatedAt time.Time
	issued    uint64
	applied   uint64
	now       func() time.Time
}

func NewSlot(policy Policy) *Slot {
	if policy == "" {
		policy = LastSettled
	}
	return &Slot{
		policy:    policy,
		text:      Welcome,
		updatedAt: time.Now(),
		now:       time.Now,
	}
}

// Issue reserves a sequence number for a new refresh.
func (s *Slot) Issue() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// Settle stores text produced by request seq and reports whether it was
// applied.
func (s *Slot) Settle(seq uint64, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.policy == LastIssued && seq < s.applied {
		return false
	}
	s.text = text
	s.updatedAt = s.now()
	if seq > s.applied {
		s.applied = seq
	}
	return true
}

func (s *Slot) Get() (string, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text, s.updatedAt
}

func (s *Slot) Policy() Policy {
	return s.policy
}
