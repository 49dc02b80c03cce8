package fastfact

import "context"

// RecordWriter exports records to storage outside the database, such as a
// folder of markdown files.
type RecordWriter interface {
	// WriteRecord writes one record.
	WriteRecord(ctx context.Context, rec *Record) error
}
