// Package goquery provides the primary fastfact.Renderer implementation,
// built on DOM traversal so navigation chrome can be dropped before text
// extraction.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"fastfact"
)

// Ensure Renderer implements fastfact.Renderer at compile time.
var _ fastfact.Renderer = (*Renderer)(nil)

// chromeTags are removed from the tree entirely before text extraction.
const chromeTags = "nav, aside, footer, header, script, style"

var (
	chromeClassRe  = regexp.MustCompile(`(?i)(menu|nav|sidebar|footer|header|breadcrumb)`)
	contentClassRe = regexp.MustCompile(`(?i)(content|main|article|post|entry)`)
)

// navLabels are short link texts that mark navigation chrome when they
// appear as a whole text node.
var navLabels = map[string]bool{
	"home":     true,
	"about":    true,
	"contact":  true,
	"privacy":  true,
	"terms":    true,
	"login":    true,
	"register": true,
	"search":   true,
}

// headingTags are the block elements whose text participates in structural
// boundary detection.
const headingTags = "p, h1, h2, h3, h4, h5, h6"

// Renderer converts an HTML fragment to plain text, stripping boilerplate
// and recording heading positions for boundary detection.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render parses the fragment, drops navigation and boilerplate elements,
// and serializes the remaining text nodes depth-first, separated by
// newlines and trimmed per node.
func (r *Renderer) Render(fragment string) (*fastfact.RenderedText, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, fastfact.Errorf(fastfact.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(chromeTags).Remove()
	doc.Find("[class]").Each(func(_ int, sel *goquery.Selection) {
		if class, ok := sel.Attr("class"); ok && chromeClassRe.MatchString(class) {
			sel.Remove()
		}
	})
	removeNavLabelNodes(doc)

	text := renderText(doc)
	return &fastfact.RenderedText{
		Text:     text,
		Headings: collectHeadings(doc, text),
	}, nil
}

// removeNavLabelNodes drops elements whose entire text is a common
// navigation label. Two guards keep real content intact: the enclosing
// element is spared when its text mentions "references" or when it carries
// a content-area class. The guards overlap and are known to be imperfect
// on unusual templates; they match the tuned behavior for the Fast Fact
// template family.
func removeNavLabelNodes(doc *goquery.Document) {
	var victims []*html.Node

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.TextNode {
				walk(c)
				continue
			}
			label := strings.ToLower(strings.TrimSpace(c.Data))
			if !navLabels[label] {
				continue
			}
			parent := c.Parent
			if parent == nil || parent.Type != html.ElementNode {
				continue
			}
			if strings.Contains(strings.ToLower(nodeText(parent)), "references") {
				continue
			}
			if contentClassRe.MatchString(attrValue(parent, "class")) {
				continue
			}
			victims = append(victims, parent)
		}
	}
	for _, root := range doc.Nodes {
		walk(root)
	}

	for _, n := range victims {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
	}
}

// renderText serializes all text nodes depth-first, trimming each and
// joining non-empty runs with newlines.
func renderText(doc *goquery.Document) string {
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
	for _, root := range doc.Nodes {
		walk(root)
	}

	return strings.Join(parts, "\n")
}

// collectHeadings records the trimmed text and rendered-text offset of
// every block heading, and of strong runs nested inside them, in document
// order. Offsets use the first occurrence of the heading text; headings
// whose text cannot be relocated after rendering get offset -1.
func collectHeadings(doc *goquery.Document, text string) []fastfact.Heading {
	var headings []fastfact.Heading

	doc.Find(headingTags).Each(func(_ int, sel *goquery.Selection) {
		blockText := strings.TrimSpace(sel.Text())
		if blockText != "" {
			headings = append(headings, fastfact.Heading{
				Text:   blockText,
				Offset: strings.Index(text, blockText),
			})
		}
		sel.Find("strong").Each(func(_ int, strong *goquery.Selection) {
			strongText := strings.TrimSpace(strong.Text())
			if strongText == "" {
				return
			}
			headings = append(headings, fastfact.Heading{
				Text:   strongText,
				Offset: strings.Index(text, strongText),
				Strong: true,
			})
		})
	})

	return headings
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

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
