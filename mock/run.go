package mock

import (
	"context"

	"fastfact"
)

var _ fastfact.IngestRunService = (*IngestRunService)(nil)

// IngestRunService is a mock implementation of fastfact.IngestRunService.
type IngestRunService struct {
	CreateIngestRunFn func(ctx context.Context, run *fastfact.IngestRun) error
	FindIngestRunsFn  func(ctx context.Context, limit int) ([]*fastfact.IngestRun, error)
}

func (s *IngestRunService) CreateIngestRun(ctx context.Context, run *fastfact.IngestRun) error {
	return s.CreateIngestRunFn(ctx, run)
}

func (s *IngestRunService) FindIngestRuns(ctx context.Context, limit int) ([]*fastfact.IngestRun, error) {
	return s.FindIngestRunsFn(ctx, limit)
}
