// Package trafilatura adapts go-trafilatura as a mailpost.ArticleExtractor.
package trafilatura

import (
	"strings"

	"github.com/awalczak/mailpost"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements mailpost.ArticleExtractor at compile time.
var _ mailpost.ArticleExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &mailpost.Article{
		Title: result.Metadata.Title,
		Text:  result.ContentText,
	}, nil
}
