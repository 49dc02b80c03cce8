package gemini_test

import (
	"context"
	"testing"

	"fastfact"
	"fastfact/gemini"
	"fastfact/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsker_Ask_ReturnsErrorWhenNoRecords(t *testing.T) {
	t.Parallel()

	records := &mock.RecordService{
		FindRecordsFn: func(context.Context, fastfact.RecordFilter) ([]*fastfact.Record, error) {
			return []*fastfact.Record{}, nil
		},
	}

	asker := gemini.NewAsker(nil, records) // nil client ok for this test

	_, err := asker.Ask(context.Background(), "what is the hospice benefit?")

	require.Error(t, err)
	assert.Equal(t, fastfact.ENOTFOUND, fastfact.ErrorCode(err))
	assert.Contains(t, fastfact.ErrorMessage(err), "no records")
}

func TestAsker_Ask_PropagatesRecordServiceError(t *testing.T) {
	t.Parallel()

	expectedErr := fastfact.Errorf(fastfact.EINTERNAL, "database error")
	records := &mock.RecordService{
		FindRecordsFn: func(context.Context, fastfact.RecordFilter) ([]*fastfact.Record, error) {
			return nil, expectedErr
		},
	}

	asker := gemini.NewAsker(nil, records)

	_, err := asker.Ask(context.Background(), "what is the hospice benefit?")

	require.Error(t, err)
	assert.Equal(t, fastfact.EINTERNAL, fastfact.ErrorCode(err))
	assert.Contains(t, fastfact.ErrorMessage(err), "database error")
}

func TestAsker_Ask_ReturnsErrorWhenQuestionEmpty(t *testing.T) {
	t.Parallel()

	asker := gemini.NewAsker(nil, nil)

	_, err := asker.Ask(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, fastfact.EINVALID, fastfact.ErrorCode(err))
	assert.Contains(t, fastfact.ErrorMessage(err), "question required")
}

func TestBuildConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "Fast Fact number")
}

func TestBuildConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.4, *config.Temperature, 0.001)
}

func TestBuildUserPrompt_ContainsRecords(t *testing.T) {
	t.Parallel()

	recs := []*fastfact.Record{
		{
			Number:  "82",
			Title:   "Medicare Hospice Benefit",
			Summary: "The benefit covers interdisciplinary care.",
			Tags:    []string{"Hospice", "Medicare"},
			URL:     "https://www.mypcnow.org/fast-fact/medicare-hospice-benefit/",
		},
	}

	prompt := gemini.BuildUserPrompt(recs, "Who is eligible?")

	assert.Contains(t, prompt, "<records>")
	assert.Contains(t, prompt, "<number>82</number>")
	assert.Contains(t, prompt, "Medicare Hospice Benefit")
	assert.Contains(t, prompt, "Hospice, Medicare")
	assert.Contains(t, prompt, "The benefit covers interdisciplinary care.")
	assert.Contains(t, prompt, "</records>")
	assert.Contains(t, prompt, "Question: Who is eligible?")
}

func TestBuildUserPrompt_DoesNotContainSystemInstruction(t *testing.T) {
	t.Parallel()

	recs := []*fastfact.Record{{Number: "1", Title: "Doc", Summary: "Content"}}

	prompt := gemini.BuildUserPrompt(recs, "question")

	assert.NotContains(t, prompt, "helpful assistant")
}
