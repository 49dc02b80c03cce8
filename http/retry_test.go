package http_test

import (
	"context"
	"errors"
	"testing"
	"time"

	fastfacthttp "fastfact/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDelays = []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond}

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	t.Run("returns on first success", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			attempts++
			return "ok", nil
		}

		content, err := fastfacthttp.FetchWithRetryDelays(context.Background(), "https://example.org", fetch, nil, testDelays)
		require.NoError(t, err)
		assert.Equal(t, "ok", content)
		assert.Equal(t, 1, attempts)
	})

	t.Run("retries until success", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			attempts++
			if attempts < 3 {
				return "", errors.New("transient")
			}
			return "ok", nil
		}

		var logged int
		logger := func(format string, args ...any) { logged++ }

		content, err := fastfacthttp.FetchWithRetryDelays(context.Background(), "https://example.org", fetch, logger, testDelays)
		require.NoError(t, err)
		assert.Equal(t, "ok", content)
		assert.Equal(t, 3, attempts)
		assert.Equal(t, 2, logged)
	})

	t.Run("returns last error after exhausting attempts", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			attempts++
			return "", errors.New("permanent")
		}

		_, err := fastfacthttp.FetchWithRetryDelays(context.Background(), "https://example.org", fetch, nil, testDelays)
		require.Error(t, err)
		assert.Equal(t, "permanent", err.Error())
		assert.Equal(t, len(testDelays)+1, attempts)
	})

	t.Run("aborts when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(ctx context.Context, url string) (string, error) {
			cancel()
			return "", errors.New("transient")
		}

		_, err := fastfacthttp.FetchWithRetryDelays(ctx, "https://example.org", fetch, nil, testDelays)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
