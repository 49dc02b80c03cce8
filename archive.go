package fastfact

// ArchiveDocument is the raw content of one snapshot file. It is read once,
// consumed by a single extraction call, and never mutated.
type ArchiveDocument struct {
	// Path is the source file path. The file name participates in
	// identifier extraction, so it travels with the content.
	Path string

	// Content is the full MIME multipart text of the snapshot.
	Content string
}

// Heading is a block-level heading run found while rendering HTML to text.
// Offset points at the heading's text inside RenderedText.Text, which lets
// boundary detection use structural information without re-parsing the DOM.
type Heading struct {
	// Text is the trimmed heading text.
	Text string

	// Offset is the byte offset of Text within RenderedText.Text,
	// or -1 if the heading text could not be located after rendering.
	Offset int

	// Strong reports whether the run came from a strong tag nested in a
	// block element rather than the block element itself.
	Strong bool
}

// RenderedText is plain text rendered from the HTML part of a snapshot,
// paired with the heading positions needed for structural boundary
// detection.
type RenderedText struct {
	Text     string
	Headings []Heading
}

// Renderer converts an HTML fragment into plain text, stripping
// navigation and boilerplate elements.
type Renderer interface {
	// Render parses the HTML fragment and returns the rendered text.
	// Block-level text runs are separated by newlines.
	Render(html string) (*RenderedText, error)
}

// SummarySpan is a half-open byte range [Start, End) into rendered text.
type SummarySpan struct {
	Start int
	End   int
}

// Valid reports whether the span describes a non-empty forward range.
func (s SummarySpan) Valid() bool {
	return s.Start >= 0 && s.Start < s.End
}
