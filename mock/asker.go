package mock

import (
	"context"

	"fastfact"
)

var _ fastfact.Asker = (*Asker)(nil)

// Asker is a mock implementation of fastfact.Asker.
type Asker struct {
	AskFn func(ctx context.Context, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, question string) (string, error) {
	return a.AskFn(ctx, question)
}

var _ fastfact.Tagger = (*Tagger)(nil)

// Tagger is a mock implementation of fastfact.Tagger.
type Tagger struct {
	SuggestTagsFn func(ctx context.Context, rec *fastfact.Record) (*fastfact.TagProposal, error)
}

func (t *Tagger) SuggestTags(ctx context.Context, rec *fastfact.Record) (*fastfact.TagProposal, error) {
	return t.SuggestTagsFn(ctx, rec)
}
