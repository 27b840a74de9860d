package extract_test

import (
	"testing"
	"time"

	"github.com/awalczak/mailpost"
	"github.com/awalczak/mailpost/extract"
	"github.com/awalczak/mailpost/goquery"
	"github.com/awalczak/mailpost/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPipeline(t *testing.T) *extract.Pipeline {
	t.Helper()

	rules, err := mailpost.DefaultRules().Compile()
	require.NoError(t, err)

	return &extract.Pipeline{
		Rules:  rules,
		Parser: goquery.NewParser(),
	}
}

func TestPipeline_Extract(t *testing.T) {
	t.Parallel()

	t.Run("group post notification", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(t)
		email := &mailpost.RawEmail{
			ID:      "msg-1",
			Subject: "Jane Doe posted in Book Club group",
			Sender:  "notification@facebookmail.com",
			Body:    `<div data-testid="post_message">Just finished reading this amazing novel!</div>`,
			Date:    "Tue, 5 Mar 2024 10:32:00 +0000",
		}

		post, ok := p.Extract(email)

		require.True(t, ok)
		assert.Equal(t, "Jane Doe", post.Author)
		assert.Equal(t, mailpost.CategoryGroup, post.Category)
		assert.Equal(t, "Just finished reading this amazing novel!", post.Content)
		assert.Equal(t, email.Subject, post.Source.Subject)
		assert.Equal(t, email.Sender, post.Source.Sender)
		assert.Equal(t, email.Date, post.Source.Date)
		assert.Equal(t, 2024, post.Timestamp.Year())
	})

	t.Run("no author and no content is absent", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(t)
		email := &mailpost.RawEmail{
			Subject: "Your weekly digest",
			Body:    `<div>Hi</div><div>notifications@example.com</div>`,
		}

		post, ok := p.Extract(email)

		assert.False(t, ok)
		assert.Nil(t, post)
	})

	t.Run("author without content is absent", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(t)
		email := &mailpost.RawEmail{
			Subject: "Jane Doe posted in Book Club group",
			Body:    `<div>Hi</div>`,
		}

		post, ok := p.Extract(email)

		assert.False(t, ok)
		assert.Nil(t, post)
	})

	t.Run("content without author is absent", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(t)
		email := &mailpost.RawEmail{
			Subject: "Your weekly digest",
			Body:    `<div data-testid="post_message">A perfectly fine piece of content with no author.</div>`,
		}

		post, ok := p.Extract(email)

		assert.False(t, ok)
		assert.Nil(t, post)
	})

	t.Run("author resolved from post-author region", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(t)
		email := &mailpost.RawEmail{
			Subject: "New activity",
			Body: `<div class="post-author">Maria Nowak</div>` +
				`<div class="userContent">The harvest festival photos are finally up.</div>`,
		}

		post, ok := p.Extract(email)

		require.True(t, ok)
		assert.Equal(t, "Maria Nowak", post.Author)
		assert.Equal(t, "The harvest festival photos are finally up.", post.Content)
	})

	t.Run("author resolved from posted-by phrase", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(t)
		email := &mailpost.RawEmail{
			Subject: "New activity",
			Body: `<div>Posted by Adam Kowalski</div>` +
				`<div class="userContent">Here is everything that happened at the meetup last night.</div>`,
		}

		post, ok := p.Extract(email)

		require.True(t, ok)
		assert.Equal(t, "Adam Kowalski", post.Author)
	})

	t.Run("unparsable date falls back to now", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		p := newPipeline(t)
		p.Now = func() time.Time { return now }

		email := &mailpost.RawEmail{
			Subject: "Jane Doe posted in Book Club group",
			Body:    `<div data-testid="post_message">Just finished reading this amazing novel!</div>`,
			Date:    "sometime last tuesday-ish",
		}

		post, ok := p.Extract(email)

		require.True(t, ok)
		assert.Equal(t, now, post.Timestamp)
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(t)
		email := &mailpost.RawEmail{
			ID:      "msg-7",
			Subject: "John Smith shared a post",
			Sender:  "notification@facebookmail.com",
			Body: `<div class="userContent">Sharing this excellent long read about urban beekeeping.</div>` +
				`<img src="https://cdn.example.com/photos/bees.jpg" alt="bees">` +
				`<a href="https://blog.example.com/bees">full article</a>`,
			Date: "2024-03-05T10:32:00Z",
		}

		first, ok := p.Extract(email)
		require.True(t, ok)
		second, ok := p.Extract(email)
		require.True(t, ok)

		assert.Equal(t, first, second)
	})

	t.Run("panicking parser degrades to absence", func(t *testing.T) {
		t.Parallel()

		rules, err := mailpost.DefaultRules().Compile()
		require.NoError(t, err)

		p := &extract.Pipeline{
			Rules: rules,
			Parser: &mock.Parser{
				ParseFn: func(body string) (mailpost.Document, error) {
					panic("parser blew up")
				},
			},
		}

		post, ok := p.Extract(&mailpost.RawEmail{
			Subject: "Jane Doe posted in Book Club group",
			Body:    "<div>whatever</div>",
		})

		assert.False(t, ok)
		assert.Nil(t, post)
	})

	t.Run("nil email is absent", func(t *testing.T) {
		t.Parallel()

		post, ok := newPipeline(t).Extract(nil)

		assert.False(t, ok)
		assert.Nil(t, post)
	})

	t.Run("unparsed body scans as flat text", func(t *testing.T) {
		t.Parallel()

		rules, err := mailpost.DefaultRules().Compile()
		require.NoError(t, err)

		// No parser at all: the body is treated as the fallback's
		// flat-text input.
		p := &extract.Pipeline{Rules: rules}

		post, ok := p.Extract(&mailpost.RawEmail{
			Subject: "Kim Lee updated their status",
			Body:    "Spent the morning repotting every plant in the apartment.\n",
		})

		require.True(t, ok)
		assert.Equal(t, mailpost.CategoryStatus, post.Category)
		assert.Equal(t, "Spent the morning repotting every plant in the apartment.", post.Content)
	})
}

func TestPipeline_ArticleStage(t *testing.T) {
	t.Parallel()

	t.Run("consulted when cascade fails", func(t *testing.T) {
		t.Parallel()

		rules, err := mailpost.DefaultRules().Compile()
		require.NoError(t, err)

		p := &extract.Pipeline{
			Rules:  rules,
			Parser: goquery.NewParser(),
			Article: &mock.ArticleExtractor{
				ExtractFn: func(html string) (*mailpost.Article, error) {
					return &mailpost.Article{Text: "Main content recovered from dense markup."}, nil
				},
			},
		}

		post, ok := p.Extract(&mailpost.RawEmail{
			Subject: "Jane Doe posted in Book Club group",
			Body:    `<div>Hi</div>`,
		})

		require.True(t, ok)
		assert.Equal(t, "Main content recovered from dense markup.", post.Content)
	})

	t.Run("not consulted when cascade succeeds", func(t *testing.T) {
		t.Parallel()

		rules, err := mailpost.DefaultRules().Compile()
		require.NoError(t, err)

		called := false
		p := &extract.Pipeline{
			Rules:  rules,
			Parser: goquery.NewParser(),
			Article: &mock.ArticleExtractor{
				ExtractFn: func(html string) (*mailpost.Article, error) {
					called = true
					return nil, nil
				},
			},
		}

		_, ok := p.Extract(&mailpost.RawEmail{
			Subject: "Jane Doe posted in Book Club group",
			Body:    `<div data-testid="post_message">Just finished reading this amazing novel!</div>`,
		})

		require.True(t, ok)
		assert.False(t, called)
	})

	t.Run("extractor error degrades to line scan", func(t *testing.T) {
		t.Parallel()

		rules, err := mailpost.DefaultRules().Compile()
		require.NoError(t, err)

		p := &extract.Pipeline{
			Rules:  rules,
			Parser: goquery.NewParser(),
			Article: &mock.ArticleExtractor{
				ExtractFn: func(html string) (*mailpost.Article, error) {
					return nil, mailpost.Errorf(mailpost.EINTERNAL, "boom")
				},
			},
		}

		post, ok := p.Extract(&mailpost.RawEmail{
			Subject: "Jane Doe posted in Book Club group",
			Body:    `<div>The reading list for next quarter is out and it looks fantastic.</div>`,
		})

		require.True(t, ok)
		assert.Equal(t, "The reading list for next quarter is out and it looks fantastic.", post.Content)
	})
}
