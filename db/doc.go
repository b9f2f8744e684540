// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db implements the Vote Store on top of a database/sql pool.

# Opening

	store, err := db.Open(cfg, m.Store)
	defer store.Close()

Open does not connect. PostgreSQL (github.com/lib/pq) is the production
driver; SQLite (modernc.org/sqlite) serves local development and tests.

# Connection Acquisition

Every operation borrows its own connection with Acquire, which pings the
connection before handing it out. Connection-level failures are retried
with a constant backoff:

	attempt 1 ─5s─ attempt 2 ─5s─ ... ─ attempt 5 → error

Each failed attempt is logged with its ordinal, and the final failure is
logged once. Statement errors and context cancellation are returned
immediately. See IsConnectionError for the classification.

# Operations

  - Ping: acquire and release
  - CastVote: insert one vote in a transaction and commit
  - CountVotes: SELECT vote, COUNT(id) ... GROUP BY vote

Failures are *models.Error values tagged KindConnection or KindQuery.

# Schema

The service expects this table to exist:

	votes(id VARCHAR PRIMARY KEY, vote VARCHAR, created_at TIMESTAMP)

CreateSchema creates it with IF NOT EXISTS when auto migration is enabled.
*/
package db
