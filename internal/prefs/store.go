// Package prefs persists per-user preferences in the local SQLite database.
// The page engine uses a single key, "theme"; the store is a plain string
// key/value table so future preferences need no schema change.
package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"folio/internal/db"
)

// ErrNotFound is returned by lookups for keys that were never set.
var ErrNotFound = errors.New("preference not found")

// SQLiteStore implements the engine's preference store on SQLite.
type SQLiteStore struct {
	db db.DBTX
}

// NewSQLiteStore creates a store over the given connection.
func NewSQLiteStore(conn db.DBTX) *SQLiteStore {
	return &SQLiteStore{db: conn}
}

// Get returns the stored value for key. ok is false when the key has never
// been set; err is reserved for storage failures.
func (s *SQLiteStore) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE key = ?`, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("scanning preference %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, datetime('now'))
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value)
	if err != nil {
		return fmt.Errorf("upserting preference %q: %w", key, err)
	}
	return nil
}

// Delete removes a stored preference. Missing keys are not an error.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM preferences WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting preference %q: %w", key, err)
	}
	return nil
}

// MustGet returns the stored value or ErrNotFound, for callers that want a
// sentinel instead of the ok form.
func (s *SQLiteStore) MustGet(ctx context.Context, key string) (string, error) {
	value, ok, err := s.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%q: %w", key, ErrNotFound)
	}
	return value, nil
}
