// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the vote API server.

The vote API casts votes, tallies them per choice, and reports whether its
PostgreSQL database is reachable.

# Starting the Server

Defaults match a docker-compose setup with a "postgresql" service:

	go run .

Point it elsewhere with environment variables or flags:

	DB_HOST=localhost PGPASSWORD=secret go run .
	go run . -p 9090 -db-host localhost -migrate

Local development without PostgreSQL:

	APP_ENV=development DATABASE_TYPE=sqlite DATABASE_URL=votes.db go run . -migrate

# Configuration

See package cliparse. The main settings:

  - DB_HOST, DB_PORT, PGDATABASE, PGUSER, PGPASSWORD: Vote Store address
  - OPTION_A, OPTION_B: option labels (informational)
  - APP_ENV: development (debug text logs) or production (JSON logs)
  - PORT (-p): Server port (default: 8080)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (health, votes)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, metrics, JSON helpers
  - models: Request/response types and error kinds
  - db: Vote Store with retrying connection acquisition
  - metrics: Prometheus collectors
  - idgen: Voter ID generation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
