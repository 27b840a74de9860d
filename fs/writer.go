// Package fs provides file-based storage for extracted posts.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/awalczak/mailpost"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// PostPath builds a relative file path for a post from its timestamp,
// category, and author.
// Example: 2024-03-05-status-jane-doe.md
func PostPath(post *mailpost.Post) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(post.Author), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "unknown"
	}
	return fmt.Sprintf("%s-%s-%s.md",
		post.Timestamp.Format("2006-01-02"), post.Category, slug)
}

// FormatPost formats a post with YAML frontmatter.
func FormatPost(post *mailpost.Post) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("author: ")
	b.WriteString(post.Author)
	b.WriteString("\ncategory: ")
	b.WriteString(string(post.Category))
	b.WriteString("\ndate: ")
	b.WriteString(post.Timestamp.Format("2006-01-02"))
	b.WriteString(fmt.Sprintf("\nimportance: %g", mailpost.Importance(post)))
	b.WriteString("\nsubject: ")
	b.WriteString(post.Source.Subject)
	b.WriteString("\n---\n\n")
	b.WriteString(post.Content)
	b.WriteString("\n")

	for _, m := range post.Media {
		b.WriteString(fmt.Sprintf("\n![%s](%s)\n", m.AltText, m.URL))
	}
	for _, l := range post.Links {
		b.WriteString(fmt.Sprintf("\n[%s](%s)\n", l.AnchorText, l.URL))
	}

	return b.String()
}

// Ensure Writer implements mailpost.PostWriter at compile time.
var _ mailpost.PostWriter = (*Writer)(nil)

// Writer writes posts as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// CreatePost writes a post to disk as a markdown file.
func (w *Writer) CreatePost(ctx context.Context, post *mailpost.Post) error {
	if err := post.Validate(); err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, PostPath(post))

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatPost(post)), 0644)
}
