// Package store provides durable session storage for PetKeep clients.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jacksonlmp/petkeep"
)

// SQLite is a petkeep.SessionStore backed by a single-file SQLite database.
// Writes are durable and survive process termination. Every read hits the
// database, so the token always reflects the latest login/logout even when
// several processes share the file.
type SQLite struct {
	db *sql.DB
}

// Open opens (creating if needed) the session database at path.
func Open(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	const schema = `
	CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize session database: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", key, err)
	}
	return value, nil
}

func (s *SQLite) set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

func (s *SQLite) del(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

// Token implements petkeep.SessionStore.
func (s *SQLite) Token(ctx context.Context) (string, error) {
	return s.get(ctx, petkeep.KeyToken)
}

// SetToken implements petkeep.SessionStore.
func (s *SQLite) SetToken(ctx context.Context, token string) error {
	return s.set(ctx, petkeep.KeyToken, token)
}

// ClearToken implements petkeep.SessionStore.
func (s *SQLite) ClearToken(ctx context.Context) error {
	return s.del(ctx, petkeep.KeyToken)
}

// OnboardingDone implements petkeep.SessionStore.
func (s *SQLite) OnboardingDone(ctx context.Context) (bool, error) {
	v, err := s.get(ctx, petkeep.KeyOnboardingDone)
	if err != nil {
		return false, err
	}
	return v != "", nil
}

// SetOnboardingDone implements petkeep.SessionStore.
func (s *SQLite) SetOnboardingDone(ctx context.Context) error {
	return s.set(ctx, petkeep.KeyOnboardingDone, "1")
}

var _ petkeep.SessionStore = (*SQLite)(nil)
