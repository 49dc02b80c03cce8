package main_test

import (
	"bytes"
	"context"
	"testing"

	"fastfact"
	main "fastfact/cmd/fastfact"
	"fastfact/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("writes all records", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			FindRecordsFn: func(_ context.Context, filter fastfact.RecordFilter) ([]*fastfact.Record, error) {
				assert.Equal(t, fastfact.SortByNumber, filter.SortBy)
				return []*fastfact.Record{
					{ID: "27", Number: "27", Title: "Dyspnea"},
					{ID: "82", Number: "82", Title: "Medicare Hospice Benefit"},
				}, nil
			},
		}

		var written []string
		writer := &mock.RecordWriter{
			WriteRecordFn: func(_ context.Context, rec *fastfact.Record) error {
				written = append(written, rec.ID)
				return nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Records: records,
			Writer:  writer,
		}

		cmd := &main.ExportCmd{Out: "export"}

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, []string{"27", "82"}, written)
		assert.Contains(t, stdout.String(), "Exported 2 records")
	})

	t.Run("filters by tag", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			FindRecordsFn: func(_ context.Context, filter fastfact.RecordFilter) ([]*fastfact.Record, error) {
				require.NotNil(t, filter.Tag)
				assert.Equal(t, "Hospice", *filter.Tag)
				return []*fastfact.Record{{ID: "82", Title: "Medicare Hospice Benefit"}}, nil
			},
		}

		writer := &mock.RecordWriter{
			WriteRecordFn: func(_ context.Context, rec *fastfact.Record) error { return nil },
		}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  &bytes.Buffer{},
			Records: records,
			Writer:  writer,
		}

		cmd := &main.ExportCmd{Out: "export", Tag: "Hospice"}

		require.NoError(t, cmd.Run(deps))
	})

	t.Run("counts write failures without aborting", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			FindRecordsFn: func(_ context.Context, _ fastfact.RecordFilter) ([]*fastfact.Record, error) {
				return []*fastfact.Record{
					{ID: "27", Title: "Dyspnea"},
					{ID: "82", Title: "Medicare Hospice Benefit"},
				}, nil
			},
		}

		writer := &mock.RecordWriter{
			WriteRecordFn: func(_ context.Context, rec *fastfact.Record) error {
				if rec.ID == "27" {
					return fastfact.Errorf(fastfact.EINTERNAL, "disk full")
				}
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Records: records,
			Writer:  writer,
		}

		cmd := &main.ExportCmd{Out: "export"}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "skip 27")
		assert.Contains(t, stdout.String(), "Exported 1 records (1 failed)")
	})

	t.Run("shows message when no records exist", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			FindRecordsFn: func(_ context.Context, _ fastfact.RecordFilter) ([]*fastfact.Record, error) {
				return []*fastfact.Record{}, nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Records: records,
		}

		cmd := &main.ExportCmd{Out: "export"}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "No records to export")
	})
}
