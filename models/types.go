package models

import "time"

// Response messages
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"
	DatabaseConnected     = "connected"
	GreetingMessage       = "Hello, I am the api service"
)

// Public error messages. Details are logged, never returned.
const (
	ErrMsgGetVotes         = "Failed to get votes"
	ErrMsgPostVote         = "Failed to post vote"
	ErrMsgMethodNotAllowed = "Method not allowed"
)

// Request types

// VoteField is the form field carrying the submitted choice
const VoteField = "vote"

// Response types

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
	Error    string `json:"error,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type PostVoteResponse struct {
	VoterID string `json:"voter_id"`
	Vote    string `json:"vote"`
}

// choice -> count; choices with no votes are absent
type VoteCounts map[string]int64

// Domain types

type Vote struct {
	ID        string    `json:"id"`
	Choice    string    `json:"vote"`
	CreatedAt time.Time `json:"created_at"` // Assigned by the store
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
