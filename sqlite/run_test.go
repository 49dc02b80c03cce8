package sqlite_test

import (
	"context"
	"testing"
	"time"

	"fastfact"
	"fastfact/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestRunService(t *testing.T) {
	t.Parallel()

	t.Run("persists a run and generates an ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewIngestRunService(db)
		ctx := context.Background()

		run := &fastfact.IngestRun{
			Folder:    "/snapshots",
			Processed: 12,
			Skipped:   3,
			Failed:    1,
			StartedAt: time.Now().UTC().Add(-time.Minute),
		}
		require.NoError(t, svc.CreateIngestRun(ctx, run))

		assert.NotEmpty(t, run.ID, "ID should be generated")
		assert.False(t, run.FinishedAt.IsZero(), "FinishedAt should be set")

		runs, err := svc.FindIngestRuns(ctx, 0)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, 12, runs[0].Processed)
		assert.Equal(t, 3, runs[0].Skipped)
		assert.Equal(t, 1, runs[0].Failed)
	})

	t.Run("returns runs most recent first with limit", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewIngestRunService(db)
		ctx := context.Background()

		base := time.Now().UTC()
		for i := 0; i < 3; i++ {
			run := &fastfact.IngestRun{
				Folder:    "/snapshots",
				Processed: i,
				StartedAt: base.Add(time.Duration(i) * time.Minute),
			}
			require.NoError(t, svc.CreateIngestRun(ctx, run))
		}

		runs, err := svc.FindIngestRuns(ctx, 2)
		require.NoError(t, err)
		require.Len(t, runs, 2)
		assert.Equal(t, 2, runs[0].Processed)
		assert.Equal(t, 1, runs[1].Processed)
	})
}
