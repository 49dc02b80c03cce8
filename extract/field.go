package extract

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"fastfact"
)

// siteName is the publisher suffix appended to snapshot titles.
const siteName = "Palliative Care Network of Wisconsin"

// FallbackURL is used when the snapshot carries no content location header.
const FallbackURL = "https://www.mypcnow.org/fast-facts"

var (
	titleRe      = regexp.MustCompile(`(?s)Subject:\s*(.+?)\s+Date:`)
	ffPrefixRe   = regexp.MustCompile(`^FF #\d+\s*`)
	siteSuffixRe = regexp.MustCompile(`\s*\|\s*` + regexp.QuoteMeta(siteName) + `\s*$`)

	urlRe = regexp.MustCompile(`Snapshot-Content-Location:\s*(https?://\S+)`)

	whitespaceRe = regexp.MustCompile(`\s+`)
)

// DecodedSubject returns the Subject header text (between Subject: and
// Date:), MIME-decoded and with soft breaks repaired, but with the
// "FF #NNN" prefix and publisher suffix intact. Identifier recovery
// matches against this form; ExtractTitle strips it down further.
func DecodedSubject(content string) string {
	m := titleRe.FindStringSubmatch(content)
	if m == nil {
		return ""
	}

	subject := strings.TrimSpace(m[1])
	subject = fastfact.DecodeWord(subject)
	return fastfact.StripSoftBreaks(subject)
}

// ExtractTitle pulls the article title from the MIME header block: the
// decoded subject with the "FF #NNN" prefix and the publisher suffix
// removed.
func ExtractTitle(content string) string {
	subject := DecodedSubject(content)
	if subject == "" {
		return "Unknown Title"
	}

	title := ffPrefixRe.ReplaceAllString(subject, "")
	title = siteSuffixRe.ReplaceAllString(title, "")
	return strings.TrimSpace(title)
}

// ExtractURL pulls the canonical page URL from the Snapshot-Content-Location
// header, falling back to the site's index URL.
func ExtractURL(content string) string {
	if m := urlRe.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	return FallbackURL
}

// identifierInput carries the views of a document that identifier
// strategies match against. Fields that could not be produced upstream are
// left empty; strategies treat empty inputs as no-match.
type identifierInput struct {
	fileName string // base name of the source file
	content  string // full raw document
	rawHTML  string // raw html part, MIME headers included
	rendered string // html part rendered to text
	subject  string // decoded subject, FF prefix intact
}

// identifierStrategy is one tier of the Fast Fact number fallback chain.
type identifierStrategy struct {
	name string
	fn   func(in identifierInput) string
}

var (
	idFilenameRe   = regexp.MustCompile(`(?i)FF\s*#\s*(\d+)`)
	idLabelRe      = regexp.MustCompile(`Fast Fact Number:\s*(\d+)`)
	idEncodedRe    = regexp.MustCompile(`Fast Fact Number:=\s*\n\s*(\d+)`)
	idSlugRe       = regexp.MustCompile(`(?i)fast-fact.*?(\d+)`)
	idSpelledRe    = regexp.MustCompile(`(?i)Fast Fact\s*#\s*(\d+)`)
	idAnyPrefixRe  = regexp.MustCompile(`(?i)(?:FF\s*#|Fast Fact\s*#?)\s*(\d+)`)
	idLooseFactRe  = regexp.MustCompile(`(?i)(?:Fact|FF)\s*#?\s*(\d{1,3})`)
	idMetaNumberRe = regexp.MustCompile(`content=3D"[^"]*?(\d{1,3})[^"]*?"`)
)

// head returns the first n bytes of s.
func head(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// identifierStrategies is the ordered fallback chain for recovering the
// Fast Fact number. First match wins; later tiers are progressively less
// trustworthy.
var identifierStrategies = []identifierStrategy{
	{"filename", func(in identifierInput) string {
		return firstGroup(idFilenameRe, in.fileName)
	}},
	{"label-raw", func(in identifierInput) string {
		return firstGroup(idLabelRe, in.content)
	}},
	{"label-encoded", func(in identifierInput) string {
		return firstGroup(idEncodedRe, in.rawHTML)
	}},
	{"label-rendered", func(in identifierInput) string {
		return firstGroup(idLabelRe, in.rendered)
	}},
	{"title", func(in identifierInput) string {
		return firstGroup(idFilenameRe, in.subject)
	}},
	{"url-slug", func(in identifierInput) string {
		return firstGroup(idSlugRe, in.content)
	}},
	{"spelled-out", func(in identifierInput) string {
		return firstGroup(idSpelledRe, in.content)
	}},
	{"head-prefix", func(in identifierInput) string {
		return firstGroup(idAnyPrefixRe, head(in.content, 1000))
	}},
	{"last-resort", func(in identifierInput) string {
		start := head(in.content, 1000)
		if v := firstGroup(idLooseFactRe, start); v != "" {
			return v
		}
		// Numbers embedded in meta content attributes, restricted to a
		// plausible Fast Fact range.
		for _, m := range idMetaNumberRe.FindAllStringSubmatch(start, -1) {
			if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 && n <= 999 {
				return m[1]
			}
		}
		return ""
	}},
}

func firstGroup(re *regexp.Regexp, s string) string {
	if s == "" {
		return ""
	}
	if m := re.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}

// ExtractIdentifier recovers the Fast Fact number by trying each strategy
// in order. Returns "" when every tier fails; the caller must synthesize a
// fallback ID and surface the degradation rather than defaulting silently.
func ExtractIdentifier(in identifierInput, trace *fastfact.Trace) string {
	in.fileName = filepath.Base(in.fileName)
	for _, s := range identifierStrategies {
		if v := s.fn(in); v != "" {
			trace.Add("identifier", s.name, true, "number %s", v)
			return v
		}
		trace.Add("identifier", s.name, false, "")
	}
	return ""
}

var (
	categoriesRe = regexp.MustCompile(`(?s)Categories:.*?<a href=3D.*?</p>`)
	titleAttrRe  = regexp.MustCompile(`title=3D"([^"]+)"`)
	anchorTextRe = regexp.MustCompile(`>([^<]+)</a>`)
)

// ExtractTags pulls category tags from the Categories block of the raw
// document. Candidates come from title attributes, falling back to anchor
// inner text. Each candidate is entity-decoded and cleaned; duplicates are
// dropped case-sensitively, preserving first-seen order. An absent block
// yields an empty slice, not an error.
func ExtractTags(content string) []string {
	block := categoriesRe.FindString(content)
	if block == "" {
		return nil
	}

	matches := titleAttrRe.FindAllStringSubmatch(block, -1)
	if len(matches) == 0 {
		matches = anchorTextRe.FindAllStringSubmatch(block, -1)
	}

	var tags []string
	seen := make(map[string]bool)
	for _, m := range matches {
		tag := fastfact.RepairBody(m[1])
		tag = strings.TrimSpace(whitespaceRe.ReplaceAllString(tag, " "))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}
