package htmltomarkdown_test

import (
	"testing"

	"github.com/awalczak/mailpost"
	"github.com/awalczak/mailpost/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements mailpost.Converter at compile time.
var _ mailpost.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Hello, world!</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "Hello, world!")
	})

	t.Run("converts emphasis and links", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>An <b>emphatic</b> note with <a href="https://example.com">a link</a>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "**emphatic**")
		assert.Contains(t, md, "[a link](https://example.com)")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("   ")

		assert.Equal(t, mailpost.EINVALID, mailpost.ErrorCode(err))
	})
}
