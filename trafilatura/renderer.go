// Package trafilatura provides an alternate fastfact.Renderer built on
// go-trafilatura's generic boilerplate removal. It is useful for snapshot
// templates outside the Fast Fact family, where the tuned DOM heuristics
// of the goquery renderer do not apply.
package trafilatura

import (
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"

	"fastfact"
)

// Ensure Renderer implements fastfact.Renderer at compile time.
var _ fastfact.Renderer = (*Renderer)(nil)

// headingAtoms are the block elements recorded for boundary detection.
var headingAtoms = map[string]bool{
	"p": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true,
}

// Renderer extracts main content via trafilatura and serializes it to
// plain text with heading positions.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render extracts the main content of the fragment and returns its text.
func (r *Renderer) Render(fragment string) (*fastfact.RenderedText, error) {
	if strings.TrimSpace(fragment) == "" {
		return nil, fastfact.Errorf(fastfact.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(fragment), trafilatura.Options{
		EnableFallback: true,
	})
	if err != nil {
		return nil, err
	}
	if result.ContentNode == nil {
		return nil, fastfact.Errorf(fastfact.ENOHTML, "no main content found")
	}

	text := renderText(result.ContentNode)
	return &fastfact.RenderedText{
		Text:     text,
		Headings: collectHeadings(result.ContentNode, text),
	}, nil
}

// renderText serializes text nodes depth-first, trimming each run and
// joining non-empty runs with newlines, matching the primary renderer's
// output shape.
func renderText(root *html.Node) string {
	var parts []string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return strings.Join(parts, "\n")
}

// collectHeadings records block headings and strong runs nested in them,
// in document order.
func collectHeadings(root *html.Node, text string) []fastfact.Heading {
	var headings []fastfact.Heading

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && headingAtoms[n.Data] {
			if blockText := strings.TrimSpace(nodeText(n)); blockText != "" {
				headings = append(headings, fastfact.Heading{
					Text:   blockText,
					Offset: strings.Index(text, blockText),
				})
			}
			for _, strong := range findStrong(n) {
				if strongText := strings.TrimSpace(nodeText(strong)); strongText != "" {
					headings = append(headings, fastfact.Heading{
						Text:   strongText,
						Offset: strings.Index(text, strongText),
						Strong: true,
					})
				}
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return headings
}

func findStrong(n *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == "strong" {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
