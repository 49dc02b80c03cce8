package extract_test

import (
	"testing"

	"fastfact/extract"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "collapses whitespace",
			input: "\nThe  benefit\ncovers\n\n  care.\n",
			want:  "The benefit covers care.",
		},
		{
			name:  "strips a leading date",
			input: "March 1, 2020\nThe benefit covers care.",
			want:  "The benefit covers care.",
		},
		{
			name:  "strips a leading date without comma",
			input: "March 1 2020 The benefit covers care.",
			want:  "The benefit covers care.",
		},
		{
			name:  "repairs quoted-printable artifacts",
			input: "the team=E2=80=99s goals =\ncontinue",
			want:  "the team's goals continue",
		},
		{
			name:  "decodes single byte escapes",
			input: "dose=2C then titrate =28slowly=29",
			want:  "dose, then titrate (slowly)",
		},
		{
			name:  "removes inline tags and entity residue",
			input: "prose <em>styled</em> words&hellip; end",
			want:  "prose styled words end",
		},
		{
			name:  "removes navigation labels even inside words",
			input: "Guidance about opioid rotation.",
			want:  "Guidance opioid rotation.",
		},
		{
			name:  "repairs spaced terminal punctuation",
			input: "the dose was increased .",
			want:  "the dose was increased.",
		},
		{
			name:  "empty input stays empty",
			input: "   \n  ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, extract.NormalizeSummary(tt.input))
		})
	}
}

func TestNormalizeSummary_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"March 1, 2020\nThe benefit covers =\ninterdisciplinary care=2C daily.",
		"the team=E2=80=99s goals\n\ncontinue &nbsp; here",
		"prose <em>styled</em> words",
		"plain sentence already clean.",
	}

	for _, input := range inputs {
		once := extract.NormalizeSummary(input)
		assert.Equal(t, once, extract.NormalizeSummary(once), "input %q", input)
	}
}
