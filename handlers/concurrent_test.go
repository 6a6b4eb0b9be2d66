// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/starvote/aitext"
	"github.com/danielhkuo/starvote/arena"
	"github.com/danielhkuo/starvote/cheer"
	"github.com/danielhkuo/starvote/live"
	"github.com/danielhkuo/starvote/models"
	"github.com/danielhkuo/starvote/testutil"
)

// TestConcurrentVotes verifies that simultaneous votes are all counted
// on both store backends
func TestConcurrentVotes(t *testing.T) {
	backends := map[string]func(*testing.T, aitext.Generator) (*arena.Arena, *live.Hub){
		"memory": testutil.NewTestArena,
		"sqlite": testutil.NewTestSQLArena,
	}

	for name, newArena := range backends {
		t.Run(name, func(t *testing.T) {
			a, _ := newArena(t, &testutil.FakeGenerator{})
			handler := NewCandidateHandler(a)

			numVoters := 50
			var applied atomic.Int32
			var wg sync.WaitGroup

			for i := 0; i < numVoters; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()

					id := strconv.Itoa(1 + i%2)
					w := httptest.NewRecorder()
					handler.Vote(w, voteRequest(id))
					if w.Code == http.StatusOK {
						applied.Add(1)
					}
				}(i)
			}

			wg.Wait()

			if int(applied.Load()) != numVoters {
				t.Errorf("Expected %d successful votes, got %d", numVoters, applied.Load())
			}

			cs, err := a.Candidates(t.Context())
			if err != nil {
				t.Fatal(err)
			}
			if cs[0].Votes != 10+numVoters/2 || cs[1].Votes != 5+numVoters/2 {
				t.Errorf("Expected %d and %d votes, got %d and %d",
					10+numVoters/2, 5+numVoters/2, cs[0].Votes, cs[1].Votes)
			}
		})
	}
}

// TestConcurrentCheers verifies the log stays bounded and ordered under
// concurrent writers
func TestConcurrentCheers(t *testing.T) {
	a, _ := testutil.NewTestArena(t, &testutil.FakeGenerator{Text: "冲"})
	handler := NewCheerHandler(a)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			var req *http.Request
			if i%2 == 0 {
				req = testutil.MakeRequest("POST", "/api/cheers", models.CheerRequest{Message: "cheer " + strconv.Itoa(i)}, nil)
				handler.PostCheer(httptest.NewRecorder(), req)
			} else {
				req = testutil.MakeRequest("POST", "/api/cheers/slogan", models.SloganRequest{CandidateID: 1}, nil)
				handler.GenerateSlogan(httptest.NewRecorder(), req)
			}
		}(i)
	}
	wg.Wait()

	cheers := a.Cheers()
	if len(cheers) != cheer.Capacity {
		t.Fatalf("Expected %d cheers, got %d", cheer.Capacity, len(cheers))
	}
	for i := 1; i < len(cheers); i++ {
		if cheers[i].Timestamp.After(cheers[i-1].Timestamp) {
			t.Errorf("Expected newest first, entry %d is newer than entry %d", i, i-1)
		}
	}
}
