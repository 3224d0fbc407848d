// Package store owns the database connection pool. It is opened once at
// process start, handed to the repositories, and closed once at shutdown.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// Register the postgres driver with database/sql.
	_ "github.com/lib/pq"
)

// Config holds options for opening and tuning the connection pool.
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// Store is the process-scoped owner of the *sql.DB pool. Connections are
// acquired and released per statement by database/sql, so concurrent
// callers and caller cancellation never corrupt pool state.
type Store struct {
	db *sql.DB
}

// Open opens the pool described by cfg and verifies connectivity with a
// bounded ping. Callers are responsible for Close on shutdown.
func Open(cfg Config) (*Store, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("store: DSN must not be empty")
	}

	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if cfg.ConnMaxIdleTime > 0 {
		db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying pool for the repositories.
func (s *Store) DB() *sql.DB { return s.db }

// Ping verifies that the database is reachable.
func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

// Stats returns pool statistics for monitoring.
func (s *Store) Stats() sql.DBStats { return s.db.Stats() }

// Close closes all pooled connections. Safe to call multiple times.
func (s *Store) Close() error { return s.db.Close() }
