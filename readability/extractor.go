// Package readability adapts go-readability as a mailpost.ArticleExtractor.
package readability

import (
	"strings"

	"github.com/awalczak/mailpost"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements mailpost.ArticleExtractor at compile time.
var _ mailpost.ArticleExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as text.
func (e *Extractor) Extract(rawHTML string) (*mailpost.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, mailpost.Errorf(mailpost.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &mailpost.Article{
		Title: article.Title,
		Text:  article.TextContent,
	}, nil
}
