package htmltomarkdown_test

import (
	"testing"

	"fastfact"
	"fastfact/htmltomarkdown"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and emphasis", func(t *testing.T) {
		t.Parallel()

		c := htmltomarkdown.NewConverter()

		md, err := c.Convert("<h1>Dyspnea</h1><p>Assess with a <strong>numeric</strong> scale.</p>")
		require.NoError(t, err)

		assert.Contains(t, md, "# Dyspnea")
		assert.Contains(t, md, "**numeric**")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		c := htmltomarkdown.NewConverter()

		_, err := c.Convert("   ")
		require.Error(t, err)
		assert.Equal(t, fastfact.EINVALID, fastfact.ErrorCode(err))
	})
}
