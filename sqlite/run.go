package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fastfact"
)

// Compile-time interface verification.
var _ fastfact.IngestRunService = (*IngestRunService)(nil)

// IngestRunService implements fastfact.IngestRunService using SQLite.
type IngestRunService struct {
	db *DB
}

// NewIngestRunService creates a new IngestRunService.
func NewIngestRunService(db *DB) *IngestRunService {
	return &IngestRunService{db: db}
}

// CreateIngestRun persists a completed run, generating an ID if missing.
func (s *IngestRunService) CreateIngestRun(ctx context.Context, run *fastfact.IngestRun) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.FinishedAt.IsZero() {
		run.FinishedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO ingest_runs (id, folder, processed, skipped, failed, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Folder, run.Processed, run.Skipped, run.Failed,
		run.StartedAt.Format(time.RFC3339), run.FinishedAt.Format(time.RFC3339))

	return err
}

// FindIngestRuns retrieves past runs, most recent first.
func (s *IngestRunService) FindIngestRuns(ctx context.Context, limit int) ([]*fastfact.IngestRun, error) {
	query := "SELECT id, folder, processed, skipped, failed, started_at, finished_at FROM ingest_runs ORDER BY started_at DESC"
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*fastfact.IngestRun
	for rows.Next() {
		var run fastfact.IngestRun
		var startedAt, finishedAt string

		if err := rows.Scan(&run.ID, &run.Folder, &run.Processed, &run.Skipped, &run.Failed,
			&startedAt, &finishedAt); err != nil {
			return nil, err
		}

		if run.StartedAt, err = time.Parse(time.RFC3339, startedAt); err != nil {
			return nil, fmt.Errorf("failed to parse started_at: %w", err)
		}
		if run.FinishedAt, err = time.Parse(time.RFC3339, finishedAt); err != nil {
			return nil, fmt.Errorf("failed to parse finished_at: %w", err)
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}
