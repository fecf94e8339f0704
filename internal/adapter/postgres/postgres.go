// Package postgres implements the slot store using PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"storefront/internal/domain"

	_ "github.com/lib/pq"
)

// DB wraps a *sql.DB and implements domain.SlotStore.
type DB struct {
	sql *sql.DB
}

var _ domain.SlotStore = (*DB)(nil)

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		"CREATE TABLE IF NOT EXISTS slots (key TEXT PRIMARY KEY, value BYTEA NOT NULL, updated_at TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_slots_updated_at ON slots(updated_at);",
	}
	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Get returns the value stored under key.
func (d *DB) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var v []byte
	err := d.sql.QueryRowContext(ctx, "SELECT value FROM slots WHERE key = $1", key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

// Put upserts the value under key.
func (d *DB) Put(ctx context.Context, key string, value []byte) error {
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO slots (key, value, updated_at) VALUES ($1, $2, $3) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at",
		key, value, time.Now().UTC(),
	)
	return err
}

// Delete removes key.
func (d *DB) Delete(ctx context.Context, key string) error {
	_, err := d.sql.ExecContext(ctx, "DELETE FROM slots WHERE key = $1", key)
	return err
}

// DeleteStale removes slots not written since before cutoff.
func (d *DB) DeleteStale(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM slots WHERE updated_at < $1", cutoff.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
