// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(status, duration_ms). The request ID is taken from X-Request-ID or
generated, echoed on the response, and available to handlers through
RequestID(r.Context()).

# Metrics

Record request count and latency per route:

	middleware.WithMetrics(m.HTTP, "/api/vote", handler)

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Delegates to github.com/rs/cors: any origin, methods GET, POST, OPTIONS,
header Content-Type. Preflight requests are answered by the library.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to get votes")

ErrorResponse writes {"error": "<message>"}.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
