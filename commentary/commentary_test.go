// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commentary

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlot_Initial(t *testing.T) {
	s := NewSlot("")
	text, _ := s.Get()
	assert.Equal(t, Welcome, text)
	assert.Equal(t, LastSettled, s.Policy())
}

func TestSlot_LastSettledWins(t *testing.T) {
	s := NewSlot(LastSettled)
	first := s.Issue()
	second := s.Issue()

	require.True(t, s.Settle(second, "newer"))
	require.True(t, s.Settle(first, "older"))

	text, _ := s.Get()
	assert.Equal(t, "older", text)
}

func TestSlot_LastIssuedDropsStale(t *testing.T) {
	s := NewSlot(LastIssued)
	first := s.Issue()
	second := s.Issue()

	require.True(t, s.Settle(second, "newer"))
	assert.False(t, s.Settle(first, "older"))

	text, _ := s.Get()
	assert.Equal(t, "newer", text)

	third := s.Issue()
	assert.True(t, s.Settle(third, "latest"))
	text, _ = s.Get()
	assert.Equal(t, "latest", text)
}

func TestSlot_LastIssuedInOrder(t *testing.T) {
	s := NewSlot(LastIssued)
	for i := 0; i < 5; i++ {
		assert.True(t, s.Settle(s.Issue(), "x"))
	}
}

func TestSlot_SettleStampsTime(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	s := NewSlot(LastSettled)
	s.now = func() time.Time { return at }

	s.Settle(s.Issue(), "hello")
	text, updated := s.Get()
	assert.Equal(t, "hello", text)
	assert.Equal(t, at, updated)
}

func TestParsePolicy(t *testing.T) {
	testCases := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"", LastSettled, false},
		{"last-settled", LastSettled, false},
		{"last-issued", LastIssued, false},
		{"newest", "", true},
	}
	for _, tc := range testCases {
		got, err := ParsePolicy(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}
}

type countingSource struct {
	calls atomic.Int32
	block chan struct{}
}

func (c *countingSource) RefreshCommentary(ctx context.Context) (string, bool) {
	c.calls.Add(1)
	if c.block != nil {
		select {
		case <-c.block:
		case <-ctx.Done():
			return "", false
		}
	}
	return "tick", true
}

func TestRefresher_Ticks(t *testing.T) {
	src := &countingSource{}
	r := NewRefresher(src, 5*time.Millisecond)
	r.Start(context.Background())
	defer r.Stop()

	assert.Eventually(t, func() bool { return src.calls.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
}

func TestRefresher_DoesNotWaitForSlowCalls(t *testing.T) {
	src := &countingSource{block: make(chan struct{})}
	r := NewRefresher(src, 5*time.Millisecond)
	r.Start(context.Background())

	// every call is blocked, yet ticks keep starting new ones
	assert.Eventually(t, func() bool { return src.calls.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)

	// Stop cancels the blocked calls and waits for them
	r.Stop()
	n := src.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, n, src.calls.Load())
}

func TestRefresher_StopIsIdempotent(t *testing.T) {
	r := NewRefresher(&countingSource{}, time.Hour)
	r.Stop()

	r.Start(context.Background())
	r.Start(context.Background())
	r.Stop()
	r.Stop()
}

func TestRefresher_StopsWithParentContext(t *testing.T) {
	src := &countingSource{}
	ctx, cancel := context.WithCancel(context.Background())
	r := NewRefresher(src, 5*time.Millisecond)
	r.Start(ctx)

	assert.Eventually(t, func() bool { return src.calls.Load() >= 1 }, 2*time.Second, 5*time.Millisecond)
	cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		r.Stop()
	}()
	wg.Wait()
}

func TestNewRefresher_DefaultInterval(t *testing.T) {
	r := NewRefresher(&countingSource{}, 0)
	assert.Equal(t, DefaultInterval, r.interval)
}
