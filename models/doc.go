// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, domain and error types for the API.

# Request Types

POST /api/vote is form-encoded. The choice is read from the field named by
VoteField ("vote").

# Response Types

Types for JSON responses:

  - HealthResponse: status, database | error
  - MessageResponse: message
  - PostVoteResponse: voter_id, vote
  - VoteCounts: choice -> count
  - ErrorResponse: error

# Domain Types

  - Vote: id, choice, created_at

# Errors

Failures are tagged with an ErrorKind:

	KindConnection // store unreachable after retries
	KindQuery      // statement or commit failed
	KindValidation // bad client input

Use NewError to tag and KindOf to inspect:

	err := models.NewError(models.KindQuery, "insert vote", err)
	if models.KindOf(err) == models.KindValidation {
		// 400
	}
*/
package models
