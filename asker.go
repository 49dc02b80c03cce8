package fastfact

import "context"

// Asker provides natural language question answering over stored records.
type Asker interface {
	// Ask answers a natural language question using stored records as
	// context. Returns ENOTFOUND if no records exist.
	Ask(ctx context.Context, question string) (string, error)
}

// TagProposal holds machine-proposed taxonomy labels for a record.
type TagProposal struct {
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// Tagger proposes taxonomy labels for records. Proposals are stored in the
// record's auto fields and never overwrite human-entered tags.
type Tagger interface {
	// SuggestTags proposes a category and tags for the record.
	SuggestTags(ctx context.Context, rec *Record) (*TagProposal, error)
}
