package extract

import (
	"regexp"
	"strings"

	"fastfact"
)

var (
	newlineRunRe = regexp.MustCompile(`\n+`)

	// Three leading date shapes: "March 1, 2020", "March 1 2020", and an
	// optional-comma variant catching anything the first two miss.
	leadingDateRes = []*regexp.Regexp{
		regexp.MustCompile(`^[A-Z][a-z]+ \d{1,2}, \d{4}\s*`),
		regexp.MustCompile(`^[A-Z][a-z]+ \d{1,2} \d{4}\s*`),
		regexp.MustCompile(`^[A-Z][a-z]+ \d{1,2},? \d{4}\s*`),
	}

	navPhraseRe = regexp.MustCompile(`(?i)(?:Home|About|Contact|Privacy|Terms|Login|Register|Search)`)

	brokenTagRe     = regexp.MustCompile(`<=\s*\n\s*[^>]*>`)
	inlineTagRe     = regexp.MustCompile(`<[^>]+>`)
	entityResidueRe = regexp.MustCompile(`&[a-zA-Z0-9#]+;`)

	terminalPunctRe = regexp.MustCompile(`\s+([.!?])\s*$`)
	spacedPunctRe   = regexp.MustCompile(`\s+([.!?])\s+`)
	spacedEqualsRe  = regexp.MustCompile(`\s+=\s+`)
	brokenEscapeRe  = regexp.MustCompile(`=\s*([A-Z0-9]{2})`)
)

// NormalizeSummary runs the layered cleanup pass over a sliced summary
// span: whitespace collapse, MIME artifact repair, entity repair,
// boilerplate stripping, and sentence-boundary repair, in that fixed
// order. It never fails; each step degrades to passing text through.
// Running it on its own output is a no-op.
func NormalizeSummary(text string) string {
	text = newlineRunRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	text = fastfact.RepairBody(text)

	for _, re := range leadingDateRes {
		text = re.ReplaceAllString(text, "")
	}

	// Residual navigation labels that survived rendering. The pattern is
	// unanchored, so words embedding a label are also affected; see the
	// renderer's guard notes.
	text = navPhraseRe.ReplaceAllString(text, "")

	text = brokenTagRe.ReplaceAllString(text, "")
	text = inlineTagRe.ReplaceAllString(text, "")
	text = entityResidueRe.ReplaceAllString(text, "")

	text = whitespaceRe.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)
	text = terminalPunctRe.ReplaceAllString(text, "$1")
	text = spacedPunctRe.ReplaceAllString(text, "$1 ")
	text = spacedEqualsRe.ReplaceAllString(text, " ")
	text = brokenEscapeRe.ReplaceAllString(text, "$1")

	return strings.TrimSpace(text)
}
