// Package extract composes subject classification, the content selector
// cascade, the heuristic fallback scan, and media/link harvesting into a
// single email-to-post pipeline.
//
// The pipeline is a pure, synchronous computation: no I/O, no shared
// mutable state. Calls for different emails are independent and safe to
// run concurrently.
package extract

import (
	"time"

	"github.com/araddon/dateparse"
	"github.com/awalczak/mailpost"
)

// Ensure Pipeline implements mailpost.Extractor at compile time.
var _ mailpost.Extractor = (*Pipeline)(nil)

// Pipeline turns raw notification emails into posts.
type Pipeline struct {
	// Rules is the compiled extraction configuration. Required.
	Rules *mailpost.Ruleset

	// Parser parses email bodies into queryable documents. When nil, or
	// when a body fails to parse, extraction degrades to the flat-text
	// fallback scan.
	Parser mailpost.Parser

	// Article, when set, is consulted after the selector cascade fails
	// and before the line scan, for bodies that parsed as markup.
	Article mailpost.ArticleExtractor

	// Now supplies the timestamp used when the email date is unparsable.
	// Defaults to time.Now.
	Now func() time.Time
}

// Extract recovers a post from a notification email. ok is false when no
// usable author or content is found; that is a normal outcome, not an
// error. Any internal fault is absorbed at this boundary and reported as
// absence so a batch caller can keep going.
func (p *Pipeline) Extract(email *mailpost.RawEmail) (post *mailpost.Post, ok bool) {
	defer func() {
		if recover() != nil {
			post, ok = nil, false
		}
	}()

	if email == nil || p.Rules == nil {
		return nil, false
	}

	var doc mailpost.Document
	if p.Parser != nil {
		if d, err := p.Parser.Parse(email.Body); err == nil {
			doc = d
		}
	}

	author, found := p.Rules.Author(email.Subject)
	if !found {
		author, found = p.Rules.AuthorFromDocument(doc)
	}
	if !found {
		return nil, false
	}

	content, contentHTML := p.content(doc, email.Body)
	if content == "" {
		return nil, false
	}

	post = &mailpost.Post{
		Author:      author,
		Content:     content,
		ContentHTML: contentHTML,
		Category:    p.Rules.ClassifyCategory(email.Subject),
		Timestamp:   p.timestamp(email.Date),
		Media:       harvestMedia(doc, p.Rules),
		Links:       harvestLinks(doc, p.Rules),
		Source: mailpost.Source{
			Subject: email.Subject,
			Sender:  email.Sender,
			Date:    email.Date,
		},
	}
	return post, true
}

// timestamp parses the raw email date leniently. Unparsable dates fall
// back to the current time, silently.
func (p *Pipeline) timestamp(raw string) time.Time {
	if raw != "" {
		if t, err := dateparse.ParseAny(raw); err == nil {
			return t
		}
	}
	if p.Now != nil {
		return p.Now().UTC()
	}
	return time.Now().UTC()
}
