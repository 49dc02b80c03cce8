// Package slog provides logging decorators for fastfact services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"fastfact"
)

// Ensure LoggingRecordService implements fastfact.RecordService.
var _ fastfact.RecordService = (*LoggingRecordService)(nil)

// LoggingRecordService wraps a RecordService with operation logging.
type LoggingRecordService struct {
	next   fastfact.RecordService
	logger *slog.Logger
}

// NewLoggingRecordService creates a new LoggingRecordService.
func NewLoggingRecordService(next fastfact.RecordService, logger *slog.Logger) *LoggingRecordService {
	return &LoggingRecordService{next: next, logger: logger}
}

// CreateRecord delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) CreateRecord(ctx context.Context, rec *fastfact.Record) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create record",
			"id", rec.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRecord(ctx, rec)
}

// FindRecordByID delegates to the wrapped service.
func (s *LoggingRecordService) FindRecordByID(ctx context.Context, id string) (*fastfact.Record, error) {
	return s.next.FindRecordByID(ctx, id)
}

// FindRecords delegates to the wrapped service and logs the result count.
func (s *LoggingRecordService) FindRecords(ctx context.Context, filter fastfact.RecordFilter) (recs []*fastfact.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find records",
			"count", len(recs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRecords(ctx, filter)
}

// UpdateRecord delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) UpdateRecord(ctx context.Context, id string, upd fastfact.RecordUpdate) (rec *fastfact.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Info("update record",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpdateRecord(ctx, id, upd)
}

// DeleteRecord delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) DeleteRecord(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete record",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteRecord(ctx, id)
}
