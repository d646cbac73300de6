package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danielokoye/bloodlens/internal/common"
	"github.com/danielokoye/bloodlens/internal/report"
)

const reportsSchema = `
CREATE TABLE IF NOT EXISTS blood_reports (
	id             UUID PRIMARY KEY,
	name           TEXT NOT NULL,
	filename       TEXT NOT NULL,
	content_hash   TEXT NOT NULL,
	rows_json      JSONB NOT NULL,
	row_count      INT NOT NULL,
	abnormal_count INT NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL
);`

// SavedReport is one persisted analysis.
type SavedReport struct {
	ID            uuid.UUID
	Name          string
	Filename      string
	ContentHash   string
	Rows          []report.TestResult
	AbnormalCount int
	CreatedAt     time.Time
}

// ReportRepository persists canonical result tables to Postgres.
type ReportRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewReportRepository(pool *pgxpool.Pool, logger *slog.Logger) *ReportRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportRepository{pool: pool, logger: logger}
}

// EnsureSchema creates the blood_reports table if it does not exist.
func (r *ReportRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, reportsSchema); err != nil {
		return common.WrapError(common.ErrDatabase, "failed to ensure reports schema", err)
	}
	return nil
}

// Save stores one analyzed report and returns its generated ID.
func (r *ReportRepository) Save(ctx context.Context, name, filename, contentHash string, rows []report.TestResult) (uuid.UUID, error) {
	payload, err := report.MarshalTable(rows)
	if err != nil {
		return uuid.Nil, common.WrapError(common.ErrInternal, "failed to encode report rows", err)
	}

	id := uuid.New()
	abnormal := 0
	for _, row := range rows {
		if row.Status != report.StatusNormal {
			abnormal++
		}
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO blood_reports (id, name, filename, content_hash, rows_json, row_count, abnormal_count, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, name, filename, contentHash, string(payload), len(rows), abnormal, time.Now().UTC(),
	)
	if err != nil {
		return uuid.Nil, common.WrapError(common.ErrDatabase, "failed to save report", err)
	}

	r.logger.Info("repository.report.saved", "report_id", id, "rows", len(rows), "abnormal", abnormal)
	return id, nil
}

// Get loads one saved report by ID.
func (r *ReportRepository) Get(ctx context.Context, id uuid.UUID) (*SavedReport, error) {
	var (
		sr      SavedReport
		payload []byte
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, filename, content_hash, rows_json, abnormal_count, created_at
		 FROM blood_reports WHERE id = $1`, id,
	).Scan(&sr.ID, &sr.Name, &sr.Filename, &sr.ContentHash, &payload, &sr.AbnormalCount, &sr.CreatedAt)
	if err != nil {
		return nil, common.WrapError(common.ErrNotFound, "report not found", err)
	}
	sr.Rows, err = report.UnmarshalTable(payload)
	if err != nil {
		return nil, common.WrapError(common.ErrInternal, "failed to decode report rows", err)
	}
	return &sr, nil
}

// List returns saved reports newest first, without their row payloads.
func (r *ReportRepository) List(ctx context.Context, limit int) ([]SavedReport, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, filename, content_hash, abnormal_count, created_at
		 FROM blood_reports ORDER BY created_at DESC LIMIT $1`, limit,
	)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, "failed to list reports", err)
	}
	defer rows.Close()

	var out []SavedReport
	for rows.Next() {
		var sr SavedReport
		if err := rows.Scan(&sr.ID, &sr.Name, &sr.Filename, &sr.ContentHash, &sr.AbnormalCount, &sr.CreatedAt); err != nil {
			return nil, common.WrapError(common.ErrDatabase, "failed to scan report row", err)
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}
