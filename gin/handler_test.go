package gin_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fastfact"
	ffgin "fastfact/gin"
	"fastfact/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(records *mock.RecordService, runs *mock.IngestRunService) http.Handler {
	return ffgin.NewRouter(ffgin.NewHandler(records, runs))
}

func TestHandler_ListRecords(t *testing.T) {
	t.Parallel()

	t.Run("passes query filters through", func(t *testing.T) {
		t.Parallel()

		var got fastfact.RecordFilter
		records := &mock.RecordService{
			FindRecordsFn: func(ctx context.Context, filter fastfact.RecordFilter) ([]*fastfact.Record, error) {
				got = filter
				return []*fastfact.Record{{ID: "82", Number: "82", Title: "Dyspnea"}}, nil
			},
		}
		router := newTestRouter(records, &mock.IngestRunService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/records?tag=Pain&status=active&approved=true&limit=10&offset=5&sort=number", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, got.Tag)
		assert.Equal(t, "Pain", *got.Tag)
		require.NotNil(t, got.Status)
		assert.Equal(t, "active", *got.Status)
		require.NotNil(t, got.LabelsApproved)
		assert.True(t, *got.LabelsApproved)
		assert.Equal(t, 10, got.Limit)
		assert.Equal(t, 5, got.Offset)
		assert.Equal(t, fastfact.SortByNumber, got.SortBy)

		var body struct {
			Records []*fastfact.Record `json:"records"`
			Total   int                `json:"total"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 1, body.Total)
		assert.Equal(t, "Dyspnea", body.Records[0].Title)
	})

	t.Run("rejects malformed limit", func(t *testing.T) {
		t.Parallel()

		router := newTestRouter(&mock.RecordService{}, &mock.IngestRunService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/records?limit=abc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_GetRecord(t *testing.T) {
	t.Parallel()

	t.Run("returns the record", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			FindRecordByIDFn: func(ctx context.Context, id string) (*fastfact.Record, error) {
				assert.Equal(t, "82", id)
				return &fastfact.Record{ID: "82", Title: "Dyspnea"}, nil
			},
		}
		router := newTestRouter(records, &mock.IngestRunService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/records/82", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var rec fastfact.Record
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
		assert.Equal(t, "Dyspnea", rec.Title)
	})

	t.Run("maps ENOTFOUND to 404", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			FindRecordByIDFn: func(ctx context.Context, id string) (*fastfact.Record, error) {
				return nil, fastfact.Errorf(fastfact.ENOTFOUND, "record not found")
			},
		}
		router := newTestRouter(records, &mock.IngestRunService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/records/999", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "record not found")
	})
}

func TestHandler_UpdateRecord(t *testing.T) {
	t.Parallel()

	t.Run("applies a partial update", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			UpdateRecordFn: func(ctx context.Context, id string, upd fastfact.RecordUpdate) (*fastfact.Record, error) {
				require.NotNil(t, upd.Title)
				assert.Equal(t, "Dyspnea Assessment", *upd.Title)
				assert.Nil(t, upd.Summary)
				return &fastfact.Record{ID: id, Title: *upd.Title}, nil
			},
		}
		router := newTestRouter(records, &mock.IngestRunService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/records/82",
			strings.NewReader(`{"title": "Dyspnea Assessment"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Dyspnea Assessment")
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		t.Parallel()

		router := newTestRouter(&mock.RecordService{}, &mock.IngestRunService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/records/82", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_DeleteRecord(t *testing.T) {
	t.Parallel()

	records := &mock.RecordService{
		DeleteRecordFn: func(ctx context.Context, id string) error {
			assert.Equal(t, "82", id)
			return nil
		},
	}
	router := newTestRouter(records, &mock.IngestRunService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/records/82", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_ApproveRecord(t *testing.T) {
	t.Parallel()

	records := &mock.RecordService{
		UpdateRecordFn: func(ctx context.Context, id string, upd fastfact.RecordUpdate) (*fastfact.Record, error) {
			require.NotNil(t, upd.LabelsApproved)
			assert.True(t, *upd.LabelsApproved)
			return &fastfact.Record{ID: id, LabelsApproved: true}, nil
		},
	}
	router := newTestRouter(records, &mock.IngestRunService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/records/82/approve", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"labelsApproved":true`)
}

func TestHandler_ListRuns(t *testing.T) {
	t.Parallel()

	runs := &mock.IngestRunService{
		FindIngestRunsFn: func(ctx context.Context, limit int) ([]*fastfact.IngestRun, error) {
			assert.Equal(t, 20, limit)
			return []*fastfact.IngestRun{{ID: "run-1", Processed: 3}}, nil
		},
	}
	router := newTestRouter(&mock.RecordService{}, runs)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/runs", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
}

func TestHandler_HealthCheck(t *testing.T) {
	t.Parallel()

	records := &mock.RecordService{
		FindRecordsFn: func(ctx context.Context, filter fastfact.RecordFilter) ([]*fastfact.Record, error) {
			return []*fastfact.Record{{ID: "1"}}, nil
		},
	}
	router := newTestRouter(records, &mock.IngestRunService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	assert.Contains(t, w.Body.String(), `"records":1`)
}
