package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

const createPreferencesTable = `CREATE TABLE IF NOT EXISTS preferences (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// SQLiteBackend stores preferences in a local SQLite file.
type SQLiteBackend struct {
	db *sql.DB
}

func OpenSQLite(ctx context.Context, path string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite %s: %w", path, err)
	}
	// one writer keeps each upsert atomic without busy retries
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, createPreferencesTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create preferences table: %w", err)
	}
	return &SQLiteBackend{db: db}, nil
}

func (s *SQLiteBackend) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read preference %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteBackend) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO preferences (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write preference %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteBackend) Close() error {
	return s.db.Close()
}
