// Package gemini implements question answering and taxonomy labeling over
// stored records using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"fastfact"
)

const model = "gemini-2.5-flash"

// Ensure Asker implements fastfact.Asker at compile time.
var _ fastfact.Asker = (*Asker)(nil)

// Asker implements fastfact.Asker using Google Gemini.
type Asker struct {
	client  *genai.Client
	records fastfact.RecordService
}

// NewAsker creates a new Asker.
func NewAsker(client *genai.Client, records fastfact.RecordService) *Asker {
	return &Asker{client: client, records: records}
}

// Ask answers a natural language question using stored records as context.
func (a *Asker) Ask(ctx context.Context, question string) (string, error) {
	if question == "" {
		return "", fastfact.Errorf(fastfact.EINVALID, "question required")
	}

	recs, err := a.records.FindRecords(ctx, fastfact.RecordFilter{SortBy: fastfact.SortByNumber})
	if err != nil {
		return "", err
	}
	if len(recs) == 0 {
		return "", fastfact.Errorf(fastfact.ENOTFOUND, "no records available")
	}

	prompt := BuildUserPrompt(recs, question)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", fastfact.Errorf(fastfact.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant answering questions about palliative care Fast Facts. Answer based only on the records provided and cite the Fast Fact number for every claim. If the answer is not in the records, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing records and question.
func BuildUserPrompt(recs []*fastfact.Record, question string) string {
	var sb strings.Builder
	sb.WriteString("<records>\n")
	for _, rec := range recs {
		sb.WriteString("<record>\n")
		fmt.Fprintf(&sb, "<number>%s</number>\n", rec.Number)
		fmt.Fprintf(&sb, "<title>%s</title>\n", rec.Title)
		if len(rec.Tags) > 0 {
			fmt.Fprintf(&sb, "<tags>%s</tags>\n", strings.Join(rec.Tags, ", "))
		}
		fmt.Fprintf(&sb, "<source>%s</source>\n", rec.URL)
		fmt.Fprintf(&sb, "<summary>%s</summary>\n", rec.Summary)
		sb.WriteString("</record>\n")
	}
	sb.WriteString("</records>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
