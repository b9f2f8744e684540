// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the vote API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, metrics.New())

# Endpoints

Health:

	GET /health - Store reachability (retries while the store is down)

API:

	GET  /api      - Fixed greeting
	GET  /api/vote - Counts per choice
	POST /api/vote - Cast a vote (form field "vote")

Operations:

	GET /metrics - Prometheus metrics
	GET /        - Banner

Other methods on /api/vote receive a JSON 405. Unknown paths receive 404.

# Middleware

Every API route is wrapped with request logging and HTTP metrics under
its route pattern. CORS is applied around the whole mux in main:

	handler := middleware.CORS(mux)
*/
package router
