// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/starvote/aitext"
	"github.com/danielhkuo/starvote/arena"
	"github.com/danielhkuo/starvote/cliparse"
	"github.com/danielhkuo/starvote/commentary"
	"github.com/danielhkuo/starvote/db"
	"github.com/danielhkuo/starvote/live"
	"github.com/danielhkuo/starvote/models"
	"github.com/danielhkuo/starvote/store"
)

// SetupTestDB opens a fresh in-memory sqlite database private to the test
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	conn, err := db.Open(db.TypeSQLite, "file:"+name+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:               3318,
		StoreType:          cliparse.StoreMemory,
		Model:              aitext.DefaultModel,
		CommentaryInterval: time.Hour,
		CommentaryPolicy:   commentary.LastSettled,
		PublicURL:          "https://vote.example.com/",
	}
}

// TestSeed returns two candidates: A with 10 votes, B with 5
func TestSeed() []models.Candidate {
	return []models.Candidate{
		{ID: 1, Name: "A", Votes: 10, Image: "https://example.com/a.png", Color: models.ColorRed},
		{ID: 2, Name: "B", Votes: 5, Image: "https://example.com/b.png", Color: models.ColorBlue},
	}
}

// FakeGenerator returns a fixed text or error and records every request
type FakeGenerator struct {
	mu    sync.Mutex
	Text  string
	Err   error
	calls []aitext.Request
}

func (f *FakeGenerator) Generate(ctx context.Context, req aitext.Request) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, req)
	return f.Text, f.Err
}

func (f *FakeGenerator) Calls() []aitext.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]aitext.Request(nil), f.calls...)
}

// FixedRand always picks index i (mod n)
type FixedRand int

func (r FixedRand) IntN(n int) int { return int(r) % n }

// NewTestArena builds an arena over an in-memory store seeded with
// TestSeed, publishing to the returned hub
func NewTestArena(t *testing.T, gen aitext.Generator) (*arena.Arena, *live.Hub) {
	t.Helper()
	return NewTestArenaWithStore(t, store.NewMemory(TestSeed()), gen)
}

// NewTestSQLArena is NewTestArena backed by a sqlite store
func NewTestSQLArena(t *testing.T, gen aitext.Generator) (*arena.Arena, *live.Hub) {
	t.Helper()

	s, err := store.NewSQL(context.Background(), SetupTestDB(t), TestSeed())
	if err != nil {
		t.Fatalf("Failed to create sql store: %v", err)
	}
	return NewTestArenaWithStore(t, s, gen)
}

func NewTestArenaWithStore(t *testing.T, s store.Store, gen aitext.Generator) (*arena.Arena, *live.Hub) {
	t.Helper()

	hub := live.NewHub()
	t.Cleanup(hub.Close)
	ai := aitext.NewService(gen, aitext.WithRand(FixedRand(0)))
	a := arena.New(s, ai, arena.WithNotifier(hub))
	return a, hub
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
