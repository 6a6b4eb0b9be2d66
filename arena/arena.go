// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package arena

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/danielhkuo/starvote/aitext"
	"github.com/danielhkuo/starvote/cheer"
	"github.com/danielhkuo/starvote/commentary"
	"github.com/danielhkuo/starvote/models"
	"github.com/danielhkuo/starvote/ranking"
	"github.com/danielhkuo/starvote/store"
)

// MaxCheerLength is the longest manual cheer accepted, in characters.
const MaxCheerLength = 100

var (
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrInvalidCheer      = errors.New("invalid cheer message")
)

// Notifier receives an event after every state change.
type Notifier interface {
	Publish(ev models.Event)
}

type nopNotifier struct{}

func (nopNotifier) Publish(models.Event) {}

// Arena owns the live voting state: candidates, cheer log and commentary.
// All mutations go through its methods.
type Arena struct {
	store  store.Store
	ai     *aitext.Service
	cheers *cheer.Log
	slot   *commentary.Slot
	notify Notifier

	// Held from snapshot to delivery so events go out in state order
	pubMu sync.Mutex
}

type Option func(*Arena)

func WithCheerLog(l *cheer.Log) Option {
	return func(a *Arena) { a.cheers = l }
}

func WithSlot(s *commentary.Slot) Option {
	return func(a *Arena) { a.slot = s }
}

func WithNotifier(n Notifier) Option {
	return func(a *Arena) { a.notify = n }
}

func New(s store.Store, ai *aitext.Service, opts ...Option) *Arena {
	a := &Arena{
		store:  s,
		ai:     ai,
		cheers: cheer.NewLog(),
		slot:   commentary.NewSlot(commentary.LastSettled),
		notify: nopNotifier{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Vote adds one vote. An unknown id is ignored and reported as not applied.
func (a *Arena) Vote(ctx context.Context, id int) (models.Candidate, bool, error) {
	applied, err := a.store.Vote(ctx, id)
	if err != nil {
		return models.Candidate{}, false, err
	}
	if !applied {
		return models.Candidate{}, false, nil
	}

	c, _, err := a.store.Candidate(ctx, id)
	if err != nil {
		return models.Candidate{}, true, err
	}
	a.publish(ctx)
	return c, true, nil
}

// Candidates returns candidates in display (seed) order.
func (a *Arena) Candidates(ctx context.Context) ([]models.Candidate, error) {
	return a.store.Candidates(ctx)
}

// Standings ranks the current candidates.
func (a *Arena) Standings(ctx context.Context) ([]models.Standing, error) {
	cs, err := a.store.Candidates(ctx)
	if err != nil {
		return nil, err
	}
	return ranking.Standings(cs), nil
}

func (a *Arena) Cheers() []models.CheerMessage {
	return a.cheers.Entries()
}

func (a *Arena) Commentary() models.CommentaryResponse {
	text, at := a.slot.Get()
	return models.CommentaryResponse{Text: text, UpdatedAt: at}
}

// Snapshot returns the full state with a freshly computed ranking.
func (a *Arena) Snapshot(ctx context.Context) (models.State, error) {
	cs, err := a.store.Candidates(ctx)
	if err != nil {
		return models.State{}, err
	}
	return models.State{
		Candidates: cs,
		Ranking:    ranking.Standings(cs),
		Cheers:     a.cheers.Entries(),
		Commentary: a.Commentary(),
	}, nil
}

// GenerateSlogan asks for a slogan for the candidate and logs it as a cheer.
func (a *Arena) GenerateSlogan(ctx context.Context, id int) (models.CheerMessage, error) {
	c, ok, err := a.store.Candidate(ctx, id)
	if err != nil {
		return models.CheerMessage{}, err
	}
	if !ok {
		return models.CheerMessage{}, fmt.Errorf("%w: %d", ErrCandidateNotFound, id)
	}

	text := a.ai.GenerateSlogan(ctx, c.Name, c.Votes)
	msg := a.cheers.Push(models.CheerFanLabel, text)
	a.publish(ctx)
	return msg, nil
}

// Cheer logs a message typed by a fan.
func (a *Arena) Cheer(ctx context.Context, text string) (models.CheerMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.CheerMessage{}, fmt.Errorf("%w: message is empty", ErrInvalidCheer)
	}
	if utf8.RuneCountInString(text) > MaxCheerLength {
		return models.CheerMessage{}, fmt.Errorf("%w: message exceeds %d characters", ErrInvalidCheer, MaxCheerLength)
	}

	msg := a.cheers.Push(models.CheerFanLabel, text)
	a.publish(ctx)
	return msg, nil
}

// RefreshCommentary generates commentary about the current top two and
// stores it. It reports false when there are fewer than two candidates,
// when ctx ended before the result arrived, or when the slot policy
// rejected a stale result.
func (a *Arena) RefreshCommentary(ctx context.Context) (string, bool) {
	cs, err := a.store.Candidates(ctx)
	if err != nil {
		slog.Error("failed to load candidates for commentary", "error", err)
		return "", false
	}
	leader, runnerUp, ok := ranking.TopTwo(cs)
	if !ok {
		slog.Debug("skipping commentary: fewer than two candidates", "candidates", len(cs))
		return "", false
	}

	seq := a.slot.Issue()
	text := a.ai.GenerateCommentary(ctx, leader.Name, runnerUp.Name, leader.Votes-runnerUp.Votes)
	if ctx.Err() != nil {
		return "", false
	}
	if !a.slot.Settle(seq, text) {
		slog.Debug("discarding stale commentary", "seq", seq)
		return text, false
	}
	a.publish(ctx)
	return text, true
}

func (a *Arena) publish(ctx context.Context) {
	a.pubMu.Lock()
	defer a.pubMu.Unlock()

	// The event outlives a cancelled request
	st, err := a.Snapshot(context.WithoutCancel(ctx))
	if err != nil {
		slog.Error("failed to snapshot state for live clients", "error", err)
		return
	}
	a.notify.Publish(models.Event{Type: models.EventState, State: st})
}
