package fastfact

import "strings"

// FormatRecords formats records for display or LLM context.
// Uses title if available, falls back to the canonical URL.
// Records are separated by blank lines.
func FormatRecords(recs []*Record) string {
	if len(recs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(recs))
	for _, rec := range recs {
		header := rec.Title
		if header == "" {
			header = rec.URL
		}
		if rec.Number != "" {
			header = "Fast Fact #" + rec.Number + ": " + header
		}
		parts = append(parts, "## "+header+"\n"+rec.Summary)
	}

	return strings.Join(parts, "\n\n")
}
