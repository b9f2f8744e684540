// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/vote-api/idgen"
	"github.com/danielhkuo/vote-api/middleware"
	"github.com/danielhkuo/vote-api/models"
)

// Multipart bodies beyond this are spilled to disk by net/http
const maxFormMemory = 1 << 20

// VoteStore is the subset of db.Store the handlers use
type VoteStore interface {
	Ping(ctx context.Context) error
	CastVote(ctx context.Context, vote models.Vote) error
	CountVotes(ctx context.Context) (models.VoteCounts, error)
}

type VoteHandler struct {
	store VoteStore
}

func NewVoteHandler(store VoteStore) *VoteHandler {
	return &VoteHandler{store: store}
}

// GetVotes handles GET /api/vote
func (h *VoteHandler) GetVotes(w http.ResponseWriter, r *http.Request) {
	slog.Info("getting votes", "request_id", middleware.RequestID(r.Context()))

	counts, err := h.store.CountVotes(r.Context())
	if err != nil {
		slog.Error("error getting votes",
			"error", err,
			"kind", models.KindOf(err).String(),
			"request_id", middleware.RequestID(r.Context()),
		)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrMsgGetVotes)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, counts)
}

// PostVote handles POST /api/vote
func (h *VoteHandler) PostVote(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.RequestID(r.Context())

	// Other methods on /api/vote also land here
	if r.Method != http.MethodPost {
		slog.Warn("received invalid request method", "method", r.Method, "request_id", requestID)
		w.Header().Set("Allow", "GET, POST")
		middleware.ErrorResponse(w, http.StatusMethodNotAllowed, models.ErrMsgMethodNotAllowed)
		return
	}

	choice, err := parseVote(r)
	if err != nil {
		slog.Error("error posting vote", "error", err, "request_id", requestID)
		middleware.ErrorResponse(w, statusFor(err), models.ErrMsgPostVote)
		return
	}

	voterID, err := idgen.GenerateVoterID()
	if err != nil {
		slog.Error("error posting vote", "error", err, "request_id", requestID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrMsgPostVote)
		return
	}

	slog.Info("received vote request", "vote", choice, "voter_id", voterID, "request_id", requestID)

	if err := h.store.CastVote(r.Context(), models.Vote{ID: voterID, Choice: choice}); err != nil {
		slog.Error("error posting vote",
			"error", err,
			"kind", models.KindOf(err).String(),
			"voter_id", voterID,
			"request_id", requestID,
		)
		middleware.ErrorResponse(w, statusFor(err), models.ErrMsgPostVote)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PostVoteResponse{
		VoterID: voterID,
		Vote:    choice,
	})
}

// parseVote reads the vote field from a urlencoded or multipart body.
// An empty value is accepted; only a missing field is rejected.
func parseVote(r *http.Request) (string, error) {
	err := r.ParseMultipartForm(maxFormMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return "", models.NewError(models.KindValidation, "parse form", err)
	}

	values, ok := r.PostForm[models.VoteField]
	if !ok || len(values) == 0 {
		return "", models.NewError(models.KindValidation, "parse form", models.ErrMissingVote)
	}
	return values[0], nil
}

// statusFor maps an error kind to an HTTP status
func statusFor(err error) int {
	if models.KindOf(err) == models.KindValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
