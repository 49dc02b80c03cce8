package mock

import (
	"context"

	"fastfact"
)

var _ fastfact.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of fastfact.RecordService.
type RecordService struct {
	CreateRecordFn   func(ctx context.Context, rec *fastfact.Record) error
	FindRecordByIDFn func(ctx context.Context, id string) (*fastfact.Record, error)
	FindRecordsFn    func(ctx context.Context, filter fastfact.RecordFilter) ([]*fastfact.Record, error)
	UpdateRecordFn   func(ctx context.Context, id string, upd fastfact.RecordUpdate) (*fastfact.Record, error)
	DeleteRecordFn   func(ctx context.Context, id string) error
}

func (s *RecordService) CreateRecord(ctx context.Context, rec *fastfact.Record) error {
	return s.CreateRecordFn(ctx, rec)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*fastfact.Record, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecords(ctx context.Context, filter fastfact.RecordFilter) ([]*fastfact.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) UpdateRecord(ctx context.Context, id string, upd fastfact.RecordUpdate) (*fastfact.Record, error) {
	return s.UpdateRecordFn(ctx, id, upd)
}

func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	return s.DeleteRecordFn(ctx, id)
}
