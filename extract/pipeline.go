package extract

import (
	"fastfact"
)

// Pipeline converts snapshot documents into records. It is stateless and
// safe for concurrent use: each Extract call reads only its input and
// allocates its own intermediates, so batch drivers may run extractions in
// parallel with no coordination.
type Pipeline struct {
	Renderer fastfact.Renderer
}

// NewPipeline creates a Pipeline using the given renderer.
func NewPipeline(r fastfact.Renderer) *Pipeline {
	return &Pipeline{Renderer: r}
}

// Extract produces a best-effort record from one snapshot document, along
// with a trace of which extraction strategies matched. Field-level
// failures degrade the affected field (empty number, sentinel summary)
// without aborting; only a document with no usable HTML part fails, with
// ENOHTML.
func (p *Pipeline) Extract(doc *fastfact.ArchiveDocument) (*fastfact.Record, *fastfact.Trace, error) {
	trace := &fastfact.Trace{}

	part, err := LocateHTMLPart(doc)
	if err != nil {
		return nil, trace, err
	}

	title := ExtractTitle(doc.Content)
	url := ExtractURL(doc.Content)
	tags := ExtractTags(doc.Content)

	summary := fastfact.SummaryUnavailable
	var renderedText string
	rendered, err := p.Renderer.Render(part.HTML)
	if err != nil {
		trace.Add("render", "renderer", false, "%v", err)
	} else {
		renderedText = rendered.Text
		if span, ok := FindBounds(rendered, trace); ok {
			summary = NormalizeSummary(rendered.Text[span.Start:span.End])
			trace.Add("summary", "normalize", true, "%d bytes", len(summary))
		}
	}

	// The identifier chain needs the subject with its FF prefix intact;
	// the cleaned title has already had it stripped.
	number := ExtractIdentifier(identifierInput{
		fileName: doc.Path,
		content:  doc.Content,
		rawHTML:  part.Raw,
		rendered: renderedText,
		subject:  DecodedSubject(doc.Content),
	}, trace)

	rec := &fastfact.Record{
		Number:     number,
		Title:      title,
		Summary:    summary,
		URL:        url,
		Tags:       tags,
		Source:     fastfact.DefaultSource,
		SourceFile: doc.Path,
		Status:     fastfact.StatusActive,
		Version:    "1.0",
	}
	return rec, trace, nil
}
