package fastfact

import (
	"context"
	"time"
)

// IngestRun records the outcome of one batch ingest over a snapshot folder.
type IngestRun struct {
	ID         string    `json:"id"`
	Folder     string    `json:"folder"`
	Processed  int       `json:"processed"`
	Skipped    int       `json:"skipped"`
	Failed     int       `json:"failed"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// IngestRunService persists ingest run statistics.
type IngestRunService interface {
	// CreateIngestRun persists a completed run.
	CreateIngestRun(ctx context.Context, run *IngestRun) error

	// FindIngestRuns retrieves past runs, most recent first.
	FindIngestRuns(ctx context.Context, limit int) ([]*IngestRun, error)
}
