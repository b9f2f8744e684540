// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/vote-api/middleware"
	"github.com/danielhkuo/vote-api/models"
)

type HealthHandler struct {
	store VoteStore
}

func NewHealthHandler(store VoteStore) *HealthHandler {
	return &HealthHandler{store: store}
}

// Check handles GET /health.
// Blocks through the full retry policy when the store is down.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		slog.Warn("health check failed", "error", err, "request_id", middleware.RequestID(r.Context()))
		middleware.JSONResponse(w, http.StatusInternalServerError, models.HealthResponse{
			Status: models.HealthStatusUnhealthy,
			Error:  err.Error(),
		})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		Status:   models.HealthStatusHealthy,
		Database: models.DatabaseConnected,
	})
}

// Hello handles GET /api
func Hello(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: models.GreetingMessage,
	})
}
