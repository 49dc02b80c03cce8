package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"fastfact"
)

// Compile-time interface verification.
var _ fastfact.RecordService = (*RecordService)(nil)

// RecordService implements fastfact.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// marshalTags serializes a tag list as a JSON array. Empty and nil lists
// both serialize as "[]" so round-trips stay stable.
func marshalTags(tags []string) (string, error) {
	if len(tags) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("failed to marshal tags: %w", err)
	}
	return string(b), nil
}

// unmarshalTags parses a stored JSON tag array. Empty arrays come back nil.
func unmarshalTags(s string) ([]string, error) {
	if s == "" || s == "[]" {
		return nil, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(s), &tags); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
	}
	return tags, nil
}

// CreateRecord persists a new record. The caller supplies the ID; ingest
// derives it from the Fast Fact number or a content hash.
func (s *RecordService) CreateRecord(ctx context.Context, rec *fastfact.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	if rec.LastEdited.IsZero() {
		rec.LastEdited = time.Now().UTC()
	}
	if rec.Status == "" {
		rec.Status = fastfact.StatusActive
	}

	_, err := s.FindRecordByID(ctx, rec.ID)
	if err == nil {
		return fastfact.Errorf(fastfact.ECONFLICT, "record %q already exists", rec.ID)
	}
	if fastfact.ErrorCode(err) != fastfact.ENOTFOUND {
		return err
	}

	tags, err := marshalTags(rec.Tags)
	if err != nil {
		return err
	}
	autoTags, err := marshalTags(rec.AutoTags)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO records (id, number, title, summary, url, tags, auto_category, auto_tags,
			labels_approved, source, source_file, content_hash, status, version, last_edited)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Number, rec.Title, rec.Summary, rec.URL, tags, rec.AutoCategory, autoTags,
		rec.LabelsApproved, rec.Source, rec.SourceFile, rec.ContentHash, rec.Status, rec.Version,
		rec.LastEdited.Format(time.RFC3339))

	return err
}

const recordColumns = `id, number, title, summary, url, tags, auto_category, auto_tags,
	labels_approved, source, source_file, content_hash, status, version, last_edited`

// scanRecord reads one record row.
func scanRecord(scan func(dest ...any) error) (*fastfact.Record, error) {
	var rec fastfact.Record
	var tags, autoTags, lastEdited string

	if err := scan(&rec.ID, &rec.Number, &rec.Title, &rec.Summary, &rec.URL, &tags,
		&rec.AutoCategory, &autoTags, &rec.LabelsApproved, &rec.Source, &rec.SourceFile,
		&rec.ContentHash, &rec.Status, &rec.Version, &lastEdited); err != nil {
		return nil, err
	}

	var err error
	if rec.Tags, err = unmarshalTags(tags); err != nil {
		return nil, err
	}
	if rec.AutoTags, err = unmarshalTags(autoTags); err != nil {
		return nil, err
	}
	if rec.LastEdited, err = time.Parse(time.RFC3339, lastEdited); err != nil {
		return nil, fmt.Errorf("failed to parse last_edited: %w", err)
	}

	return &rec, nil
}

// FindRecordByID retrieves a record by ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*fastfact.Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+recordColumns+`
		FROM records
		WHERE id = ?
	`, id)

	rec, err := scanRecord(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fastfact.Errorf(fastfact.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// FindRecords retrieves records matching the filter.
func (s *RecordService) FindRecords(ctx context.Context, filter fastfact.RecordFilter) ([]*fastfact.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recordColumns + " FROM records WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Number != nil {
		query.WriteString(" AND number = ?")
		args = append(args, *filter.Number)
	}
	if filter.Tag != nil {
		query.WriteString(" AND EXISTS (SELECT 1 FROM json_each(records.tags) WHERE json_each.value = ?)")
		args = append(args, *filter.Tag)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, *filter.Status)
	}
	if filter.LabelsApproved != nil {
		query.WriteString(" AND labels_approved = ?")
		args = append(args, *filter.LabelsApproved)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	switch filter.SortBy {
	case fastfact.SortByNumber:
		// Numbers are stored as text because hash-derived IDs have no
		// numeric form; cast for natural ordering.
		query.WriteString(" ORDER BY CAST(number AS INTEGER) ASC")
	default:
		query.WriteString(" ORDER BY last_edited DESC")
	}

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*fastfact.Record
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

// UpdateRecord applies a partial update and bumps the edit timestamp.
func (s *RecordService) UpdateRecord(ctx context.Context, id string, upd fastfact.RecordUpdate) (*fastfact.Record, error) {
	rec, err := s.FindRecordByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		rec.Title = *upd.Title
	}
	if upd.Summary != nil {
		rec.Summary = *upd.Summary
	}
	if upd.Tags != nil {
		rec.Tags = *upd.Tags
	}
	if upd.AutoCategory != nil {
		rec.AutoCategory = *upd.AutoCategory
	}
	if upd.AutoTags != nil {
		rec.AutoTags = *upd.AutoTags
	}
	if upd.LabelsApproved != nil {
		rec.LabelsApproved = *upd.LabelsApproved
	}
	if upd.Status != nil {
		rec.Status = *upd.Status
	}
	rec.LastEdited = time.Now().UTC()

	if err := rec.Validate(); err != nil {
		return nil, err
	}

	tags, err := marshalTags(rec.Tags)
	if err != nil {
		return nil, err
	}
	autoTags, err := marshalTags(rec.AutoTags)
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE records
		SET title = ?, summary = ?, tags = ?, auto_category = ?, auto_tags = ?,
			labels_approved = ?, status = ?, last_edited = ?
		WHERE id = ?
	`, rec.Title, rec.Summary, tags, rec.AutoCategory, autoTags,
		rec.LabelsApproved, rec.Status, rec.LastEdited.Format(time.RFC3339), id)

	if err != nil {
		return nil, err
	}

	return rec, nil
}

// DeleteRecord permanently removes a record.
func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return fastfact.Errorf(fastfact.ENOTFOUND, "record not found")
	}

	return nil
}
