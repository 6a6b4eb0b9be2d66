// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commentary

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultInterval is the time between automatic refreshes.
const DefaultInterval = 30 * time.Second

// Source produces and stores a fresh commentary line. ok is false when
// no refresh was possible.
type Source interface {
	RefreshCommentary(ctx context.Context) (text string, ok bool)
}

// Refresher calls Source on a fixed interval until stopped. Each tick
// starts an independent refresh; a slow call does not delay the next tick.
type Refresher struct {
	src      Source
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	wg     sync.WaitGroup
}

func NewRefresher(src Source, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Refresher{src: src, interval: interval}
}

// Start launches the ticker. Calling Start on a running Refresher is a no-op.
func (r *Refresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}

	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})
	go r.loop(ctx, r.done)
	slog.Info("commentary refresher started", "interval", r.interval)
}

// Stop cancels the ticker and waits for in-flight refreshes to return.
func (r *Refresher) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	r.wg.Wait()
	slog.Info("commentary refresher stopped")
}

func (r *Refresher) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.wg.Add(1)
			go func() {
				defer r.wg.Done()
				if text, ok := r.src.RefreshCommentary(ctx); ok {
					slog.Debug("commentary refreshed", "text", text)
				}
			}()
		}
	}
}
