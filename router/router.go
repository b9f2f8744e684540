// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/vote-api/handlers"
	"github.com/danielhkuo/vote-api/metrics"
	"github.com/danielhkuo/vote-api/middleware"
)

func NewRouter(store handlers.VoteStore, m *metrics.Metrics) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(store)
	voteHandler := handlers.NewVoteHandler(store)

	wrap := func(route string, h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithMetrics(m.HTTP, route, h))
	}

	// Health check
	mux.HandleFunc("GET /health", wrap("/health", healthHandler.Check))

	// Greeting
	mux.HandleFunc("GET /api", wrap("/api", handlers.Hello))

	// Votes
	mux.HandleFunc("GET /api/vote", wrap("/api/vote", voteHandler.GetVotes))
	mux.HandleFunc("POST /api/vote", wrap("/api/vote", voteHandler.PostVote))
	// Any other method gets a JSON 405 from PostVote
	mux.HandleFunc("/api/vote", wrap("/api/vote", voteHandler.PostVote))

	// Metrics
	mux.Handle("GET /metrics", m.Handler())

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("vote-api v1"))
	})

	return mux
}
