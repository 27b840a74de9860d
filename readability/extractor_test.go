package readability_test

import (
	"testing"

	"github.com/awalczak/mailpost"
	"github.com/awalczak/mailpost/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements mailpost.ArticleExtractor at compile time.
var _ mailpost.ArticleExtractor = (*readability.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts main content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Notification</title></head>
<body>
<nav><a href="/">Home</a></nav>
<article>
<p>The annual charity run raised a record amount this year and every volunteer deserves the credit.</p>
<p>Registration for next year opens in January.</p>
</article>
<footer>Copyright 2024</footer>
</body>
</html>`

		ext := readability.NewExtractor()
		article, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, article.Text, "charity run")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		ext := readability.NewExtractor()
		_, err := ext.Extract("")

		assert.Equal(t, mailpost.EINVALID, mailpost.ErrorCode(err))
	})
}
