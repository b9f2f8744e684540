// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/danielhkuo/vote-api/cliparse"
	"github.com/danielhkuo/vote-api/metrics"
	"github.com/danielhkuo/vote-api/models"
)

const (
	insertVotePostgres = `INSERT INTO votes (id, vote, created_at) VALUES ($1, $2, CURRENT_TIMESTAMP)`
	insertVoteSQLite   = `INSERT INTO votes (id, vote, created_at) VALUES (?, ?, CURRENT_TIMESTAMP)`
	countVotes         = `SELECT vote, COUNT(id) AS count FROM votes GROUP BY vote`
)

// RetryPolicy bounds connection acquisition
type RetryPolicy struct {
	Attempts int           // Total attempts, including the first
	Delay    time.Duration // Sleep between attempts
}

// DefaultRetryPolicy is 5 attempts, 5 seconds apart
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{Attempts: 5, Delay: 5 * time.Second}
}

// Store is the Vote Store backed by a database/sql pool
type Store struct {
	db         *sql.DB
	retry      RetryPolicy
	metrics    *metrics.StoreMetrics
	insertVote string
}

// Open creates the pool described by cfg. No connection is made until
// the first Acquire.
func Open(cfg cliparse.Config, m *metrics.StoreMetrics) (*Store, error) {
	conn, err := sql.Open(driverName(cfg.DatabaseType), cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.DatabaseType == cliparse.DatabaseSQLite {
		// One writer; a shared file does not benefit from more
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
		conn.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	policy := RetryPolicy{Attempts: cfg.ConnectAttempts, Delay: cfg.ConnectDelay}
	return NewStore(conn, cfg.DatabaseType, policy, m), nil
}

// NewStore wraps an existing pool. m may be nil.
func NewStore(conn *sql.DB, databaseType string, policy RetryPolicy, m *metrics.StoreMetrics) *Store {
	insert := insertVotePostgres
	if databaseType == cliparse.DatabaseSQLite {
		insert = insertVoteSQLite
	}
	if policy.Attempts < 1 {
		policy.Attempts = 1
	}
	return &Store{db: conn, retry: policy, metrics: m, insertVote: insert}
}

// DB exposes the underlying pool
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Acquire borrows a pinged connection from the pool, retrying
// connection-level failures per the retry policy. The caller must Close it.
func (s *Store) Acquire(ctx context.Context) (*sql.Conn, error) {
	var (
		conn    *sql.Conn
		attempt int
	)

	op := func() error {
		attempt++
		c, err := s.connect(ctx)
		if err != nil {
			s.metrics.ConnectAttempt(false)
			if !IsConnectionError(err) {
				return backoff.Permanent(err)
			}
			if attempt < s.retry.Attempts {
				slog.Warn("database connection failed",
					"attempt", attempt,
					"max_attempts", s.retry.Attempts,
					"error", err,
				)
			}
			return err
		}
		s.metrics.ConnectAttempt(true)
		conn = c
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(s.retry.Delay), uint64(s.retry.Attempts-1)),
		ctx,
	)
	if err := backoff.Retry(op, policy); err != nil {
		slog.Error("failed to connect to database",
			"attempts", attempt,
			"max_attempts", s.retry.Attempts,
			"error", err,
		)
		return nil, models.NewError(models.KindConnection, "connect to database", err)
	}

	slog.Debug("connected to database", "attempts", attempt)
	return conn, nil
}

func (s *Store) connect(ctx context.Context) (*sql.Conn, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

// Ping acquires a connection and releases it immediately
func (s *Store) Ping(ctx context.Context) error {
	conn, err := s.Acquire(ctx)
	if err != nil {
		return err
	}
	return conn.Close()
}

// CastVote inserts one vote and commits it. The store assigns created_at.
func (s *Store) CastVote(ctx context.Context, vote models.Vote) error {
	conn, err := s.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return models.NewError(models.KindQuery, "begin transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, s.insertVote, vote.ID, vote.Choice); err != nil {
		return models.NewError(models.KindQuery, "insert vote", err)
	}

	if err := tx.Commit(); err != nil {
		return models.NewError(models.KindQuery, "commit vote", err)
	}

	s.metrics.VoteCast()
	return nil
}

// CountVotes returns the number of stored votes per choice.
// Choices without votes are absent from the result.
func (s *Store) CountVotes(ctx context.Context) (models.VoteCounts, error) {
	conn, err := s.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, countVotes)
	if err != nil {
		return nil, models.NewError(models.KindQuery, "count votes", err)
	}
	defer rows.Close()

	counts := make(models.VoteCounts)
	for rows.Next() {
		var choice string
		var count int64
		if err := rows.Scan(&choice, &count); err != nil {
			return nil, models.NewError(models.KindQuery, "scan vote count", err)
		}
		counts[choice] = count
	}
	if err := rows.Err(); err != nil {
		return nil, models.NewError(models.KindQuery, "iterate vote counts", err)
	}

	return counts, nil
}

func driverName(databaseType string) string {
	if databaseType == cliparse.DatabaseSQLite {
		return "sqlite"
	}
	return "postgres"
}
