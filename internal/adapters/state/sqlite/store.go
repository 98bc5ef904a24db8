// Package sqlite provides a SQLite-backed session state store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/TomoakiAbebe/rac-tourist/internal/domain"
	"github.com/TomoakiAbebe/rac-tourist/internal/ports"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS session_state (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at INTEGER NOT NULL
);`

// Store persists session keys in one SQLite table.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

var _ ports.BatchStateStore = (*Store)(nil)

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0o700); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}

	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

const upsertState = `INSERT INTO session_state (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := s.sqlDB.ExecContext(ctx, upsertState, key, value, s.now().UTC().UnixMilli()); err != nil {
		return fmt.Errorf("put state %q: %w", key, err)
	}
	return nil
}

// PutAll upserts every entry inside one transaction.
func (s *Store) PutAll(ctx context.Context, entries []ports.StateEntry) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin state batch: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	updatedAt := s.now().UTC().UnixMilli()
	for _, entry := range entries {
		if _, err = tx.ExecContext(ctx, upsertState, entry.Key, entry.Value, updatedAt); err != nil {
			return fmt.Errorf("put state %q: %w", entry.Key, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit state batch: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var value string
	err := s.sqlDB.QueryRowContext(ctx, `SELECT value FROM session_state WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("state %q: %w", key, domain.ErrStateKeyNotFound)
		}
		return "", fmt.Errorf("get state %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM session_state WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete state %q: %w", key, err)
	}
	return nil
}
