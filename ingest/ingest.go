// Package ingest loads snapshot folders into record storage. Files are
// extracted concurrently; per-file failures are counted and logged without
// aborting the batch.
package ingest

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"fastfact"
	"fastfact/extract"
)

// defaultConcurrency bounds parallel extraction when unset.
const defaultConcurrency = 4

// Ingester processes snapshot folders into records.
type Ingester struct {
	pipeline *extract.Pipeline
	records  fastfact.RecordService
	runs     fastfact.IngestRunService

	// Concurrency bounds parallel file extraction.
	Concurrency int

	// Logger receives per-file outcomes. Defaults to slog.Default().
	Logger *slog.Logger
}

// NewIngester creates an Ingester. The run service may be nil when run
// statistics don't need to be persisted.
func NewIngester(pipeline *extract.Pipeline, records fastfact.RecordService, runs fastfact.IngestRunService) *Ingester {
	return &Ingester{
		pipeline: pipeline,
		records:  records,
		runs:     runs,
	}
}

func (ing *Ingester) logger() *slog.Logger {
	if ing.Logger != nil {
		return ing.Logger
	}
	return slog.Default()
}

// ProcessFolder extracts every .mhtml file under folder and persists the
// resulting records. Files whose content hash already exists are skipped,
// as are records whose ID is already stored. Per-file failures are counted
// in the returned run; only folder access and context errors abort.
func (ing *Ingester) ProcessFolder(ctx context.Context, folder string) (*fastfact.IngestRun, error) {
	paths, err := snapshotPaths(folder)
	if err != nil {
		return nil, err
	}

	run := &fastfact.IngestRun{
		Folder:    folder,
		StartedAt: time.Now().UTC(),
	}

	concurrency := ing.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			outcome := ing.processFile(gctx, path)

			mu.Lock()
			switch outcome {
			case outcomeProcessed:
				run.Processed++
			case outcomeSkipped:
				run.Skipped++
			case outcomeFailed:
				run.Failed++
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	run.FinishedAt = time.Now().UTC()
	if ing.runs != nil {
		if err := ing.runs.CreateIngestRun(ctx, run); err != nil {
			return nil, err
		}
	}

	ing.logger().Info("ingest finished",
		"folder", folder,
		"processed", run.Processed,
		"skipped", run.Skipped,
		"failed", run.Failed,
	)
	return run, nil
}

type outcome int

const (
	outcomeProcessed outcome = iota
	outcomeSkipped
	outcomeFailed
)

// processFile extracts and stores one snapshot.
func (ing *Ingester) processFile(ctx context.Context, path string) outcome {
	content, err := os.ReadFile(path)
	if err != nil {
		ing.logger().Error("read failed", "path", path, "error", err)
		return outcomeFailed
	}

	hash := HashContent(string(content))
	existing, err := ing.records.FindRecords(ctx, fastfact.RecordFilter{ContentHash: &hash, Limit: 1})
	if err != nil {
		ing.logger().Error("hash lookup failed", "path", path, "error", err)
		return outcomeFailed
	}
	if len(existing) > 0 {
		ing.logger().Info("skipped unchanged", "path", path, "id", existing[0].ID)
		return outcomeSkipped
	}

	rec, trace, err := ing.pipeline.Extract(&fastfact.ArchiveDocument{
		Path:    path,
		Content: string(content),
	})
	if err != nil {
		ing.logger().Error("extraction failed", "path", path, "error", err)
		return outcomeFailed
	}

	rec.ID = RecordID(rec.Number, rec.Title)
	rec.ContentHash = hash

	if err := ing.records.CreateRecord(ctx, rec); err != nil {
		if fastfact.ErrorCode(err) == fastfact.ECONFLICT {
			ing.logger().Info("skipped existing", "path", path, "id", rec.ID)
			return outcomeSkipped
		}
		ing.logger().Error("create failed", "path", path, "id", rec.ID, "error", err)
		return outcomeFailed
	}

	ing.logger().Info("created record",
		"id", rec.ID,
		"title", rec.Title,
		"identifier_strategy", trace.Matched("identifier"),
	)
	return outcomeProcessed
}

// snapshotPaths lists .mhtml files directly under folder, sorted by name.
func snapshotPaths(folder string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".mhtml") {
			paths = append(paths, filepath.Join(folder, e.Name()))
		}
	}
	return paths, nil
}
