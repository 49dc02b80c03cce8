package mock

import (
	"context"

	"fastfact"
)

var _ fastfact.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of fastfact.RecordWriter.
type RecordWriter struct {
	WriteRecordFn func(ctx context.Context, rec *fastfact.Record) error
}

func (w *RecordWriter) WriteRecord(ctx context.Context, rec *fastfact.Record) error {
	return w.WriteRecordFn(ctx, rec)
}
