package extract_test

import (
	"testing"

	"fastfact/extract"

	"github.com/stretchr/testify/assert"
)

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	t.Run("strips prefix and publisher suffix", func(t *testing.T) {
		t.Parallel()

		content := "Subject: FF #82 Medicare Hospice Benefit | Palliative Care Network of Wisconsin\nDate: Mon, 2 Mar 2020"

		assert.Equal(t, "Medicare Hospice Benefit", extract.ExtractTitle(content))
	})

	t.Run("decodes an RFC 2047 subject", func(t *testing.T) {
		t.Parallel()

		content := "Subject: =?utf-8?Q?FF_=2382_Dyspnea_=7C_Palliative_Care_Network_of_Wisconsin?=\nDate: Mon, 2 Mar 2020"

		assert.Equal(t, "Dyspnea", extract.ExtractTitle(content))
	})

	t.Run("repairs a soft line break in the subject", func(t *testing.T) {
		t.Parallel()

		content := "Subject: FF #129 Steroids=\n in Palliative Care | Palliative Care Network of Wisconsin\nDate: Mon, 2 Mar 2020"

		assert.Equal(t, "Steroids in Palliative Care", extract.ExtractTitle(content))
	})

	t.Run("defaults when the subject header is missing", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Unknown Title", extract.ExtractTitle("Content-Type: text/html\n\n<html></html>"))
	})
}

func TestExtractURL(t *testing.T) {
	t.Parallel()

	t.Run("reads the snapshot content location", func(t *testing.T) {
		t.Parallel()

		content := "Snapshot-Content-Location: https://www.mypcnow.org/fast-fact/dyspnea/\nSubject: x"

		assert.Equal(t, "https://www.mypcnow.org/fast-fact/dyspnea/", extract.ExtractURL(content))
	})

	t.Run("falls back to the index page", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, extract.FallbackURL, extract.ExtractURL("Subject: no location here"))
	})
}

func TestExtractTags(t *testing.T) {
	t.Parallel()

	t.Run("prefers title attributes and deduplicates", func(t *testing.T) {
		t.Parallel()

		content := `<p>Categories: <a href=3D"https://x/" title=3D"Pain">Pain</a>, ` +
			`<a href=3D"https://y/" title=3D"Ethics &amp; Law">Ethics &amp; Law</a>, ` +
			`<a href=3D"https://x/" title=3D"Pain">Pain</a></p>`

		assert.Equal(t, []string{"Pain", "Ethics & Law"}, extract.ExtractTags(content))
	})

	t.Run("falls back to anchor text", func(t *testing.T) {
		t.Parallel()

		content := `<p>Categories: <a href=3D"https://x/">Symptom Management</a></p>`

		assert.Equal(t, []string{"Symptom Management"}, extract.ExtractTags(content))
	})

	t.Run("dedup is case sensitive", func(t *testing.T) {
		t.Parallel()

		content := `<p>Categories: <a href=3D"https://x/" title=3D"Pain">Pain</a>, ` +
			`<a href=3D"https://y/" title=3D"PAIN">PAIN</a></p>`

		assert.Equal(t, []string{"Pain", "PAIN"}, extract.ExtractTags(content))
	})

	t.Run("absent block yields no tags", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, extract.ExtractTags("<p>No category block here.</p>"))
	})
}
