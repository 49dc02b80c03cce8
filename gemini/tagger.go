package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"fastfact"
)

// Ensure Tagger implements fastfact.Tagger at compile time.
var _ fastfact.Tagger = (*Tagger)(nil)

// Tagger implements fastfact.Tagger using Google Gemini. Proposals are
// written to the record's auto fields by the caller and reviewed by a human
// before approval.
type Tagger struct {
	client *genai.Client
}

// NewTagger creates a new Tagger.
func NewTagger(client *genai.Client) *Tagger {
	return &Tagger{client: client}
}

// SuggestTags proposes a category and tags for the record.
func (t *Tagger) SuggestTags(ctx context.Context, rec *fastfact.Record) (*fastfact.TagProposal, error) {
	if rec == nil {
		return nil, fastfact.Errorf(fastfact.EINVALID, "record required")
	}
	if rec.Summary == "" || rec.Summary == fastfact.SummaryUnavailable {
		return nil, fastfact.Errorf(fastfact.EINVALID, "record %q has no summary to label", rec.ID)
	}

	prompt := BuildTagPrompt(rec)
	config := BuildTagConfig()

	result, err := t.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, fastfact.Errorf(fastfact.EINTERNAL, "gemini returned nil result")
	}

	return ParseTagProposal(result.Text())
}

// BuildTagConfig returns the GenerateContentConfig for labeling calls.
// Labeling wants deterministic output, so the temperature is zero.
func BuildTagConfig() *genai.GenerateContentConfig {
	temp := float32(0)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: `You label palliative care reference articles. Respond with a single JSON object of the form {"category": "...", "tags": ["...", "..."]} and nothing else. Use at most five short lowercase tags.`,
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

// BuildTagPrompt builds the labeling prompt for one record.
func BuildTagPrompt(rec *fastfact.Record) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Title: %s\n", rec.Title)
	if len(rec.Tags) > 0 {
		fmt.Fprintf(&sb, "Existing tags: %s\n", strings.Join(rec.Tags, ", "))
	}
	fmt.Fprintf(&sb, "Summary: %s\n", rec.Summary)
	return sb.String()
}

// ParseTagProposal extracts the JSON proposal from a model response,
// tolerating markdown fences and surrounding prose.
func ParseTagProposal(text string) (*fastfact.TagProposal, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return nil, fastfact.Errorf(fastfact.EINTERNAL, "no JSON object in model response")
	}

	var proposal fastfact.TagProposal
	if err := json.Unmarshal([]byte(text[start:end+1]), &proposal); err != nil {
		return nil, fastfact.Errorf(fastfact.EINTERNAL, "failed to parse model response: %v", err)
	}
	if proposal.Category == "" && len(proposal.Tags) == 0 {
		return nil, fastfact.Errorf(fastfact.EINTERNAL, "model response carried no labels")
	}
	return &proposal, nil
}
