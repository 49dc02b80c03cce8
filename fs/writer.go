// Package fs provides file-based export of records as markdown.
package fs

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"fastfact"
)

// URLToPath converts a record URL to a relative file path.
// Example: https://www.mypcnow.org/fast-fact/dyspnea/ → fast-fact/dyspnea/index.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path

	if path == "" || path == "/" {
		return "index.md", nil
	}

	path = strings.TrimPrefix(path, "/")

	if strings.HasSuffix(path, "/") {
		return path + "index.md", nil
	}

	return path + ".md", nil
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// RecordPath builds the export path for a record: the URL path when one
// exists, otherwise a slug of the number and title.
func RecordPath(rec *fastfact.Record) (string, error) {
	if rec.URL != "" {
		return URLToPath(rec.URL)
	}

	slug := strings.Trim(slugRe.ReplaceAllString(strings.ToLower(rec.Title), "-"), "-")
	if slug == "" {
		slug = "record"
	}
	if rec.Number != "" {
		return fmt.Sprintf("ff-%s-%s.md", rec.Number, slug), nil
	}
	return slug + ".md", nil
}

// FormatRecord formats a record with YAML frontmatter.
func FormatRecord(rec *fastfact.Record) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(rec.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(rec.Title)
	if rec.Number != "" {
		b.WriteString("\nnumber: ")
		b.WriteString(rec.Number)
	}
	if len(rec.Tags) > 0 {
		b.WriteString("\ntags: [")
		b.WriteString(strings.Join(rec.Tags, ", "))
		b.WriteString("]")
	}
	b.WriteString("\nedited: ")
	b.WriteString(rec.LastEdited.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(rec.Summary)
	b.WriteString("\n")
	return b.String()
}

// Ensure Writer implements fastfact.RecordWriter at compile time.
var _ fastfact.RecordWriter = (*Writer)(nil)

// Writer writes records as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteRecord writes a record to disk as a markdown file.
func (w *Writer) WriteRecord(ctx context.Context, rec *fastfact.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	relPath, err := RecordPath(rec)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatRecord(rec)), 0644)
}

// WritePage writes fetched page markdown to disk under its URL path, with
// minimal frontmatter. Used by the fetch flow to keep converted copies of
// live pages next to exported records.
func (w *Writer) WritePage(pageURL, title, markdown string) error {
	relPath, err := URLToPath(pageURL)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("---\nsource: ")
	b.WriteString(pageURL)
	b.WriteString("\ntitle: ")
	b.WriteString(title)
	b.WriteString("\n---\n\n")
	b.WriteString(markdown)

	return os.WriteFile(fullPath, []byte(b.String()), 0644)
}
