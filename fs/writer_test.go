package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/awalczak/mailpost"
	"github.com/awalczak/mailpost/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePost() *mailpost.Post {
	return &mailpost.Post{
		Author:    "Jane Doe",
		Content:   "Looking forward to the weekend hike!",
		Category:  mailpost.CategoryStatus,
		Timestamp: time.Date(2024, 3, 5, 10, 32, 0, 0, time.UTC),
		Source: mailpost.Source{
			Subject: "Jane Doe posted an update",
		},
	}
}

func TestPostPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		author string
		want   string
	}{
		{"simple name", "Jane Doe", "2024-03-05-status-jane-doe.md"},
		{"punctuation stripped", "O'Brien, Pat", "2024-03-05-status-o-brien-pat.md"},
		{"empty author falls back", "!!!", "2024-03-05-status-unknown.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			post := samplePost()
			post.Author = tt.author
			assert.Equal(t, tt.want, fs.PostPath(post))
		})
	}
}

func TestFormatPost(t *testing.T) {
	t.Parallel()

	post := samplePost()
	post.Media = []mailpost.Media{{URL: "https://cdn.example.com/a.jpg", AltText: "trail"}}
	post.Links = []mailpost.Link{{URL: "https://example.com/hike", AnchorText: "details"}}

	out := fs.FormatPost(post)

	assert.Contains(t, out, "author: Jane Doe")
	assert.Contains(t, out, "category: status")
	assert.Contains(t, out, "date: 2024-03-05")
	assert.Contains(t, out, "importance: 2.5")
	assert.Contains(t, out, "subject: Jane Doe posted an update")
	assert.Contains(t, out, "Looking forward to the weekend hike!")
	assert.Contains(t, out, "![trail](https://cdn.example.com/a.jpg)")
	assert.Contains(t, out, "[details](https://example.com/hike)")
}

func TestWriter_CreatePost(t *testing.T) {
	t.Parallel()

	t.Run("writes markdown file with frontmatter", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writer := fs.NewWriter(dir)

		post := samplePost()
		require.NoError(t, writer.CreatePost(context.Background(), post))

		data, err := os.ReadFile(filepath.Join(dir, "2024-03-05-status-jane-doe.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "author: Jane Doe")
		assert.Contains(t, string(data), "Looking forward to the weekend hike!")
	})

	t.Run("creates base directory if missing", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested", "posts")
		writer := fs.NewWriter(dir)

		require.NoError(t, writer.CreatePost(context.Background(), samplePost()))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("rejects invalid post", func(t *testing.T) {
		t.Parallel()

		writer := fs.NewWriter(t.TempDir())
		err := writer.CreatePost(context.Background(), &mailpost.Post{})

		require.Error(t, err)
		assert.Equal(t, mailpost.EINVALID, mailpost.ErrorCode(err))
	})
}
