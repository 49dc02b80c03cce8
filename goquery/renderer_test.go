package goquery_test

import (
	"strings"
	"testing"

	"fastfact"
	"fastfact/goquery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_StripsChromeElements(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<nav>Site navigation</nav>
		<script>var x = 1;</script>
		<style>.a{}</style>
		<p>Actual content.</p>
		<footer>Copyright</footer>
	</body></html>`

	rendered, err := goquery.NewRenderer().Render(html)
	require.NoError(t, err)

	assert.Equal(t, "Actual content.", rendered.Text)
}

func TestRenderer_StripsChromeClasses(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<div class="fusion-menu-wrapper"><a href="/">Link</a></div>
		<div class="sidebar-widget">Widget</div>
		<div class="breadcrumb">Trail</div>
		<p>Kept paragraph.</p>
	</body></html>`

	rendered, err := goquery.NewRenderer().Render(html)
	require.NoError(t, err)

	assert.Equal(t, "Kept paragraph.", rendered.Text)
}

func TestRenderer_RemovesNavLabels(t *testing.T) {
	t.Parallel()

	t.Run("drops bare navigation labels", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><ul><li>Home</li><li>Contact</li></ul><p>Prose.</p></body></html>`

		rendered, err := goquery.NewRenderer().Render(html)
		require.NoError(t, err)

		assert.Equal(t, "Prose.", rendered.Text)
	})

	t.Run("keeps labels inside content-area classes", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="post-content">Search<em> strategies differ.</em></div></body></html>`

		rendered, err := goquery.NewRenderer().Render(html)
		require.NoError(t, err)

		assert.Contains(t, rendered.Text, "Search")
	})

	t.Run("keeps labels when enclosing text mentions references", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div>Home<a> care references are listed below.</a></div></body></html>`

		rendered, err := goquery.NewRenderer().Render(html)
		require.NoError(t, err)

		assert.Contains(t, rendered.Text, "Home")
	})
}

func TestRenderer_SeparatesBlocksWithNewlines(t *testing.T) {
	t.Parallel()

	html := `<html><body><p>First block.</p><p>Second block.</p></body></html>`

	rendered, err := goquery.NewRenderer().Render(html)
	require.NoError(t, err)

	assert.Equal(t, "First block.\nSecond block.", rendered.Text)
}

func TestRenderer_CollectsHeadings(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<h2>Background</h2>
		<p>Some prose.</p>
		<p><strong>References</strong></p>
	</body></html>`

	rendered, err := goquery.NewRenderer().Render(html)
	require.NoError(t, err)

	var texts []string
	for _, h := range rendered.Headings {
		texts = append(texts, h.Text)
	}
	assert.Contains(t, texts, "Background")
	assert.Contains(t, texts, "References")

	var strongRef *fastfact.Heading
	for i := range rendered.Headings {
		if rendered.Headings[i].Strong && rendered.Headings[i].Text == "References" {
			strongRef = &rendered.Headings[i]
		}
	}
	require.NotNil(t, strongRef, "strong heading run should be recorded")
	assert.Equal(t, strings.Index(rendered.Text, "References"), strongRef.Offset)
}
