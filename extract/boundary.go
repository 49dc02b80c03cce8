package extract

import (
	"strings"

	"fastfact"
)

const (
	// publishedMarker opens the metadata line that precedes the summary.
	publishedMarker = "Published On:"

	// mimeBoundaryMarker appearing in rendered text means tag stripping
	// leaked a following MIME part (usually CSS); real content never
	// extends past it.
	mimeBoundaryMarker = "------MultipartBoundary"

	// disclaimerPhrase precedes an in-text mention of "references" that
	// must not be mistaken for the section heading.
	disclaimerPhrase = "consult other relevant and up-to-date experts"
)

// referencesHeadings are the exact heading texts that terminate a summary.
var referencesHeadings = map[string]bool{
	"References":  true,
	"References:": true,
	"REFERENCES":  true,
	"REFERENCES:": true,
}

// navContextMarkers reject a "Resources" occurrence whose preceding context
// is navigation chrome rather than article content. "fusion-" is the
// page-builder class prefix used by the site's theme.
var navContextMarkers = []string{"menu", "nav", "search", "www.mypcnow.org", "fusion-"}

// FindBounds locates the summary span inside rendered text. The start is
// the newline after the "Published On:" line; the end is resolved by tiers
// tried in order: structural References headings, disambiguated textual
// "References", structural then textual "Resources". A MIME boundary marker
// before the detected end overrides it. Returns ok=false when no valid
// span exists; callers must report the summary as unavailable rather than
// guess.
func FindBounds(rendered *fastfact.RenderedText, trace *fastfact.Trace) (fastfact.SummarySpan, bool) {
	text := rendered.Text

	start := findStart(text)
	if start == -1 {
		trace.Add("boundary", "start", false, "no published-on line")
		return fastfact.SummarySpan{}, false
	}
	trace.Add("boundary", "start", true, "offset %d", start)

	end := -1
	if pos := structuralReferences(rendered); pos != -1 {
		end = pos
		trace.Add("boundary", "references-structural", true, "offset %d", pos)
	} else if pos := textualReferences(text); pos != -1 {
		end = pos
		trace.Add("boundary", "references-text", true, "offset %d", pos)
	} else if pos := structuralResources(rendered); pos != -1 {
		end = pos
		trace.Add("boundary", "resources-structural", true, "offset %d", pos)
	} else if pos := textualResources(text); pos != -1 {
		end = pos
		trace.Add("boundary", "resources-text", true, "offset %d", pos)
	}
	if end == -1 {
		trace.Add("boundary", "end", false, "no references or resources heading")
		return fastfact.SummarySpan{}, false
	}

	if b := strings.Index(text, mimeBoundaryMarker); b != -1 && b < end {
		end = b
		trace.Add("boundary", "mime-boundary", true, "override at %d", b)
	}

	span := fastfact.SummarySpan{Start: start, End: end}
	if !span.Valid() {
		trace.Add("boundary", "span", false, "start %d >= end %d", start, end)
		return fastfact.SummarySpan{}, false
	}
	return span, true
}

// findStart returns the offset of the newline following the published-on
// metadata line, or -1. Starting at the newline skips the date token; the
// normalizer trims any date residue.
func findStart(text string) int {
	idx := strings.Index(text, publishedMarker)
	if idx == -1 {
		return -1
	}
	nl := strings.Index(text[idx:], "\n")
	if nl == -1 {
		return -1
	}
	return idx + nl
}

// structuralReferences scans rendered headings (block tags and strong runs
// nested in them, in document order) for an exact References heading.
func structuralReferences(rendered *fastfact.RenderedText) int {
	for _, h := range rendered.Headings {
		if h.Offset < 0 {
			continue
		}
		if referencesHeadings[h.Text] {
			return h.Offset
		}
	}
	return -1
}

// textualReferences scans every case-insensitive occurrence of
// "references" and keeps the first that looks like a section heading:
// not inside the disclaimer phrase, preceded by a sentence or line
// boundary, not an in-text citation ("references 2 and 3"), starting with
// a capital R, and followed by end-of-text, whitespace, or a colon.
func textualReferences(text string) int {
	lower := strings.ToLower(text)
	const word = "references"

	for pos := indexFrom(lower, word, 0); pos != -1; pos = indexFrom(lower, word, pos+1) {
		before := text[max(0, pos-50):pos]
		if strings.Contains(strings.ToLower(before), disclaimerPhrase) {
			continue
		}
		if before != "" && !isBoundaryByte(before[len(before)-1]) {
			continue
		}
		if followedByDigit(text, pos+len(word)) {
			continue
		}
		if text[pos] != 'R' {
			continue
		}
		if after := pos + len(word); after < len(text) {
			c := text[after]
			if c != '\n' && c != ' ' && c != ':' {
				continue
			}
		}
		return pos
	}
	return -1
}

// structuralResources mirrors the structural References scan for the
// Resources fallback heading, case-insensitively, and additionally rejects
// occurrences preceded by navigation context. Block headings are scanned
// before nested strong runs.
func structuralResources(rendered *fastfact.RenderedText) int {
	for _, strongPass := range []bool{false, true} {
		for _, h := range rendered.Headings {
			if h.Strong != strongPass || h.Offset < 0 {
				continue
			}
			lower := strings.ToLower(h.Text)
			if lower != "resources" && lower != "resources:" {
				continue
			}
			if hasNavContext(rendered.Text, h.Offset) {
				continue
			}
			return h.Offset
		}
	}
	return -1
}

// textualResources is the last boundary tier: a text search for a
// Resources heading with navigation-context rejection.
func textualResources(text string) int {
	lower := strings.ToLower(text)
	const word = "resources"

	for pos := indexFrom(lower, word, 0); pos != -1; pos = indexFrom(lower, word, pos+1) {
		if hasNavContext(text, pos) {
			continue
		}
		if text[pos] != 'R' {
			continue
		}
		if after := pos + len(word); after < len(text) {
			c := text[after]
			if c != '\n' && c != ' ' && c != ':' {
				continue
			}
		}
		return pos
	}
	return -1
}

// hasNavContext reports whether the 100 characters before pos contain a
// navigation marker.
func hasNavContext(text string, pos int) bool {
	before := strings.ToLower(text[max(0, pos-100):pos])
	for _, marker := range navContextMarkers {
		if strings.Contains(before, marker) {
			return true
		}
	}
	return false
}

// followedByDigit reports whether the first non-space character after
// offset is a digit, as in the citation "references 2 and 3".
func followedByDigit(text string, offset int) bool {
	rest := strings.TrimLeft(text[min(offset, len(text)):], " ")
	return rest != "" && rest[0] >= '0' && rest[0] <= '9'
}

func isBoundaryByte(c byte) bool {
	switch c {
	case '\n', ' ', '.', ':', ';':
		return true
	}
	return false
}

func indexFrom(s, substr string, from int) int {
	if from >= len(s) {
		return -1
	}
	i := strings.Index(s[from:], substr)
	if i == -1 {
		return -1
	}
	return from + i
}
