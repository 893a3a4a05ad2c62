package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	// sqlite3 registers the "sqlite3" database/sql driver.
	_ "github.com/mattn/go-sqlite3"

	"github.com/nahubn1/airplane-recognition-quiz/pkg/metrics"
)

const sqliteBackend = "sqlite"

// SQLite implements KV over a single-file sqlite database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at path and ensures the schema.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			namespace  TEXT NOT NULL,
			key        TEXT NOT NULL,
			value      BLOB NOT NULL,
			updated_at INTEGER NOT NULL,
			PRIMARY KEY (namespace, key)
		)
	`)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: create schema: %w", ErrOpen, err)
	}

	return &SQLite{db: db}, nil
}

// Get returns the value for key.
func (s *SQLite) Get(ctx context.Context, namespace, key string) ([]byte, bool, error) {
	start := time.Now()
	defer func() {
		metrics.RecordStoreLatency(sqliteBackend, "get", float64(time.Since(start).Milliseconds()))
	}()
	metrics.RecordStoreOperation(sqliteBackend, "get")

	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE namespace = ? AND key = ?`,
		namespace, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		metrics.RecordStoreError(sqliteBackend, "get")
		return nil, false, fmt.Errorf("sqlite get %s/%s: %w", namespace, key, err)
	}
	return value, true, nil
}

// Set upserts the value for key.
func (s *SQLite) Set(ctx context.Context, namespace, key string, value []byte) error {
	start := time.Now()
	defer func() {
		metrics.RecordStoreLatency(sqliteBackend, "set", float64(time.Since(start).Milliseconds()))
	}()
	metrics.RecordStoreOperation(sqliteBackend, "set")

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (namespace, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (namespace, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, namespace, key, value, time.Now().Unix())
	if err != nil {
		metrics.RecordStoreError(sqliteBackend, "set")
		return fmt.Errorf("sqlite set %s/%s: %w", namespace, key, err)
	}
	return nil
}

// Delete removes key; absent keys are not an error.
func (s *SQLite) Delete(ctx context.Context, namespace, key string) error {
	start := time.Now()
	defer func() {
		metrics.RecordStoreLatency(sqliteBackend, "delete", float64(time.Since(start).Milliseconds()))
	}()
	metrics.RecordStoreOperation(sqliteBackend, "delete")

	_, err := s.db.ExecContext(ctx,
		`DELETE FROM kv WHERE namespace = ? AND key = ?`,
		namespace, key,
	)
	if err != nil {
		metrics.RecordStoreError(sqliteBackend, "delete")
		return fmt.Errorf("sqlite delete %s/%s: %w", namespace, key, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("sqlite close: %w", err)
	}
	return nil
}
