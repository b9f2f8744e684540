// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the vote API.

# Handler Types

Each handler is a struct holding the Vote Store:

  - VoteHandler: cast and tally votes
  - HealthHandler: store reachability

Handlers depend on the VoteStore interface, satisfied by *db.Store:

	voteHandler := handlers.NewVoteHandler(store)

# Endpoints

	GET  /health   → HealthHandler.Check
	GET  /api      → Hello
	GET  /api/vote → VoteHandler.GetVotes
	POST /api/vote → VoteHandler.PostVote

# Casting a Vote

POST /api/vote takes a form body with a vote field:

	curl -d vote=Cats localhost:8080/api/vote
	{"voter_id":"9f86d081884c7d65","vote":"Cats"}

The voter ID is generated by the service. The choice is free-form and is
not checked against OPTION_A or OPTION_B.

# Errors

Every failure is a JSON body plus a log line. Store failures answer 500
with a fixed message; a missing vote field answers 400 with the same
message. Only /health returns the underlying error text.
*/
package handlers
