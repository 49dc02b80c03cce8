package fastfact

import (
	"context"
	"time"
)

// SummaryUnavailable is the sentinel summary value stored when boundary
// detection could not locate a valid summary span. It is deliberately
// distinguishable from a successfully extracted empty summary.
const SummaryUnavailable = "Summary not available"

// DefaultSource identifies the content family records are extracted from.
const DefaultSource = "Fast Fact"

// Record represents one extracted Fast Fact article.
type Record struct {
	ID string `json:"id"`

	// Number is the Fast Fact number recovered from the snapshot. Empty
	// when every extraction strategy failed; callers synthesize a
	// hash-based ID in that case rather than silently defaulting.
	Number string `json:"number"`

	Title   string `json:"title"`
	Summary string `json:"summary"`
	URL     string `json:"url"`

	// Tags are the category labels parsed from the snapshot, in first-seen
	// order with duplicates removed.
	Tags []string `json:"tags"`

	// AutoCategory and AutoTags hold machine-proposed labels. They never
	// overwrite human-entered Tags and are cleared on approval edits only
	// by explicit update.
	AutoCategory string   `json:"autoCategory"`
	AutoTags     []string `json:"autoTags"`

	// LabelsApproved reports whether a human has reviewed the taxonomy
	// labels for this record.
	LabelsApproved bool `json:"labelsApproved"`

	Source      string    `json:"source"`
	SourceFile  string    `json:"sourceFile"`
	ContentHash string    `json:"contentHash"`
	Status      string    `json:"status"`
	Version     string    `json:"version"`
	LastEdited  time.Time `json:"lastEdited"`
}

// Record status values.
const (
	StatusActive   = "active"
	StatusArchived = "archived"
)

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.ID == "" {
		return Errorf(EINVALID, "record ID required")
	}
	if r.Title == "" {
		return Errorf(EINVALID, "record title required")
	}
	if r.Source == "" {
		return Errorf(EINVALID, "record source required")
	}
	switch r.Status {
	case "", StatusActive, StatusArchived:
	default:
		return Errorf(EINVALID, "invalid record status %q", r.Status)
	}
	return nil
}

// RecordService represents a service for managing extracted records.
type RecordService interface {
	// CreateRecord persists a new record.
	// Returns ECONFLICT if a record with the same ID already exists.
	CreateRecord(ctx context.Context, rec *Record) error

	// FindRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindRecordByID(ctx context.Context, id string) (*Record, error)

	// FindRecords retrieves records matching the filter.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// UpdateRecord applies a partial update.
	// Returns ENOTFOUND if the record does not exist.
	UpdateRecord(ctx context.Context, id string, upd RecordUpdate) (*Record, error)

	// DeleteRecord permanently removes a record.
	// Returns ENOTFOUND if the record does not exist.
	DeleteRecord(ctx context.Context, id string) error
}

// RecordSortOrder represents the sort order for record queries.
type RecordSortOrder string

// RecordSortOrder constants for RecordFilter.
const (
	SortByNumber     RecordSortOrder = "number"
	SortByLastEdited RecordSortOrder = "last_edited"
)

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	ID             *string `json:"id"`
	Number         *string `json:"number"`
	Tag            *string `json:"tag"`
	Status         *string `json:"status"`
	LabelsApproved *bool   `json:"labelsApproved"`
	ContentHash    *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy RecordSortOrder `json:"sortBy"`
}

// RecordUpdate represents a partial update to a record.
// Nil fields are left unchanged.
type RecordUpdate struct {
	Title          *string   `json:"title"`
	Summary        *string   `json:"summary"`
	Tags           *[]string `json:"tags"`
	AutoCategory   *string   `json:"autoCategory"`
	AutoTags       *[]string `json:"autoTags"`
	LabelsApproved *bool     `json:"labelsApproved"`
	Status         *string   `json:"status"`
}
