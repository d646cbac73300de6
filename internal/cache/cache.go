// Package cache persists canonical result tables keyed by document content
// hash, so re-analyzing identical bytes never re-runs OCR or model calls.
package cache

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielokoye/bloodlens/internal/common"
	"github.com/danielokoye/bloodlens/internal/report"
)

const schema = `
CREATE TABLE IF NOT EXISTS extraction_cache (
	cache_key  TEXT PRIMARY KEY,
	rows_json  TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);`

type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (creating if needed) the sqlite cache at path.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, "failed to open cache", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, common.WrapError(common.ErrDatabase, "failed to initialize cache schema", err)
	}
	logger.Debug("cache.open", "path", path)
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Get returns the cached table for key, reporting whether one exists. A row
// whose payload no longer unmarshals is treated as a miss.
func (s *Store) Get(ctx context.Context, key string) ([]report.TestResult, bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT rows_json FROM extraction_cache WHERE cache_key = ?`, key,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, common.WrapError(common.ErrDatabase, "cache lookup failed", err)
	}
	rows, err := report.UnmarshalTable([]byte(payload))
	if err != nil {
		s.logger.Warn("cache.get.stale_payload", "key", key, "error", err)
		return nil, false, nil
	}
	return rows, true, nil
}

// Put upserts the table for key.
func (s *Store) Put(ctx context.Context, key string, rows []report.TestResult) error {
	payload, err := report.MarshalTable(rows)
	if err != nil {
		return common.WrapError(common.ErrInternal, "failed to encode cache payload", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO extraction_cache (cache_key, rows_json, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(cache_key) DO UPDATE SET rows_json = excluded.rows_json, created_at = excluded.created_at`,
		key, string(payload), time.Now().UTC(),
	)
	if err != nil {
		return common.WrapError(common.ErrDatabase, "cache write failed", err)
	}
	return nil
}
