package fastfact

// Converter transforms HTML content into Markdown.
type Converter interface {
	// Convert transforms HTML into Markdown.
	Convert(html string) (string, error)
}
