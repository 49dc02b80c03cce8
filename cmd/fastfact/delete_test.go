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

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes record with --force", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		records := &mock.RecordService{
			DeleteRecordFn: func(_ context.Context, id string) error {
				deletedID = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Records: records,
		}

		cmd := &main.DeleteCmd{ID: "82", Force: true}

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "82", deletedID)
		assert.Contains(t, stdout.String(), "Deleted")
	})

	t.Run("requires --force flag", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		cmd := &main.DeleteCmd{ID: "82"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, fastfact.EINVALID, fastfact.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("returns error when record not found", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			DeleteRecordFn: func(_ context.Context, id string) error {
				return fastfact.Errorf(fastfact.ENOTFOUND, "record not found")
			},
		}

		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Records: records,
		}

		cmd := &main.DeleteCmd{ID: "999", Force: true}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
