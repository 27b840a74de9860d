package mock

import "github.com/awalczak/mailpost"

var _ mailpost.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of mailpost.Extractor.
type Extractor struct {
	ExtractFn func(email *mailpost.RawEmail) (*mailpost.Post, bool)
}

func (e *Extractor) Extract(email *mailpost.RawEmail) (*mailpost.Post, bool) {
	return e.ExtractFn(email)
}

var _ mailpost.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of mailpost.ArticleExtractor.
type ArticleExtractor struct {
	ExtractFn func(html string) (*mailpost.Article, error)
}

func (e *ArticleExtractor) Extract(html string) (*mailpost.Article, error) {
	return e.ExtractFn(html)
}
