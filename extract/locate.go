// Package extract implements the snapshot extraction engine: locating the
// HTML part of an MHTML document, pulling header fields, detecting the
// summary boundaries, and normalizing the summary text.
package extract

import (
	"regexp"
	"strings"

	"fastfact"
)

var (
	htmlHeaderRe  = regexp.MustCompile(`(?i)Content-Type:\s*text/html`)
	contentTypeRe = regexp.MustCompile(`(?i)Content-Type:`)
)

// htmlRootMarkers are tried in order when trimming MIME headers off the
// captured part. The bare "<" fallback catches fragments without a
// doctype or html/body element.
var htmlRootMarkers = []string{"<!DOCTYPE", "<html", "<body"}

// HTMLPart is the first text/html part of a snapshot document.
type HTMLPart struct {
	// Raw is the captured part including its MIME headers. Identifier
	// extraction needs it: the encoded "Fast Fact Number" pattern lives
	// in the pre-decoded bytes.
	Raw string

	// HTML is Raw trimmed to start at the first HTML root indicator.
	HTML string
}

// LocateHTMLPart isolates the first text/html part of the document. The
// part runs from its Content-Type header up to the next Content-Type
// header or end of document. Returns ENOHTML when no usable HTML is found;
// that failure is terminal for the document.
func LocateHTMLPart(doc *fastfact.ArchiveDocument) (*HTMLPart, error) {
	loc := htmlHeaderRe.FindStringIndex(doc.Content)
	if loc == nil {
		return nil, fastfact.Errorf(fastfact.ENOHTML, "no text/html part in %q", doc.Path)
	}

	end := len(doc.Content)
	if next := contentTypeRe.FindStringIndex(doc.Content[loc[1]:]); next != nil {
		end = loc[1] + next[0]
	}
	raw := doc.Content[loc[0]:end]

	for _, marker := range htmlRootMarkers {
		if i := strings.Index(raw, marker); i != -1 {
			return &HTMLPart{Raw: raw, HTML: raw[i:]}, nil
		}
	}
	if i := strings.Index(raw, "<"); i != -1 {
		return &HTMLPart{Raw: raw, HTML: raw[i:]}, nil
	}

	return nil, fastfact.Errorf(fastfact.ENOHTML, "html part in %q has no markup", doc.Path)
}
