// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/vote-api/models"
	"github.com/danielhkuo/vote-api/testutil"
)

// TestConcurrentVoteSubmissions verifies that simultaneous votes are all
// stored and each gets its own voter ID
func TestConcurrentVoteSubmissions(t *testing.T) {
	store := testutil.SetupTestDB(t)
	handler := NewVoteHandler(store)

	numVoters := 20
	choices := []string{"Cats", "Dogs"}

	var successCount atomic.Int32
	var wg sync.WaitGroup
	var mu sync.Mutex
	ids := make(map[string]bool)

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(voterIdx int) {
			defer wg.Done()

			req := testutil.MakeFormRequest("POST", "/api/vote", url.Values{"vote": {choices[voterIdx%2]}})
			w := httptest.NewRecorder()
			handler.PostVote(w, req)

			if w.Code != http.StatusOK {
				return
			}
			successCount.Add(1)

			var resp models.PostVoteResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Errorf("Failed to decode response: %v", err)
				return
			}
			mu.Lock()
			ids[resp.VoterID] = true
			mu.Unlock()
		}(i)
	}

	wg.Wait()

	// All submissions should succeed
	if int(successCount.Load()) != numVoters {
		t.Errorf("Expected %d successful submissions, got %d", numVoters, successCount.Load())
	}
	if len(ids) != numVoters {
		t.Errorf("Expected %d distinct voter IDs, got %d", numVoters, len(ids))
	}

	// Tally must match what was submitted
	w := httptest.NewRecorder()
	handler.GetVotes(w, httptest.NewRequest("GET", "/api/vote", nil))

	var counts models.VoteCounts
	testutil.AssertJSON(t, w, &counts)
	if counts["Cats"] != 10 || counts["Dogs"] != 10 {
		t.Errorf("Expected 10 Cats and 10 Dogs, got %v", counts)
	}
}
