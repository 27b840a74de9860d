package mailpost_test

import (
	"strings"
	"testing"

	"github.com/awalczak/mailpost"
	"github.com/stretchr/testify/assert"
)

func TestImportance(t *testing.T) {
	t.Parallel()

	t.Run("short status post", func(t *testing.T) {
		t.Parallel()

		post := &mailpost.Post{
			Author:   "Kim Lee",
			Content:  "Feeling great today!",
			Category: mailpost.CategoryStatus,
		}

		// No length buckets, status weight only.
		assert.Equal(t, 1.0, mailpost.Importance(post))
	})

	t.Run("length buckets are independently additive", func(t *testing.T) {
		t.Parallel()

		post := &mailpost.Post{
			Author:   "Jane Doe",
			Content:  strings.Repeat("a", 350),
			Category: mailpost.CategoryPost,
		}

		// >100 and >300 buckets plus the default category weight.
		assert.Equal(t, 3.0, mailpost.Importance(post))
	})

	t.Run("media and links add weight", func(t *testing.T) {
		t.Parallel()

		post := &mailpost.Post{
			Author:   "Jane Doe",
			Content:  "Look at this!",
			Category: mailpost.CategoryPhoto,
			Media:    []mailpost.Media{{URL: "https://example.com/a.jpg"}},
			Links:    []mailpost.Link{{URL: "https://example.com"}},
		}

		// photo weight 2 + one image + half a link.
		assert.Equal(t, 3.5, mailpost.Importance(post))
	})

	t.Run("clamped to ten", func(t *testing.T) {
		t.Parallel()

		media := make([]mailpost.Media, 10)
		links := make([]mailpost.Link, 10)
		post := &mailpost.Post{
			Author:   "Jane Doe",
			Content:  strings.Repeat("a", 2000),
			Category: mailpost.CategoryVideo,
			Media:    media,
			Links:    links,
		}

		assert.Equal(t, mailpost.MaxImportance, mailpost.Importance(post))
	})

	t.Run("nil post scores zero", func(t *testing.T) {
		t.Parallel()

		assert.Zero(t, mailpost.Importance(nil))
	})
}
