// Package slog provides logging decorators for mailpost services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/awalczak/mailpost"
)

// Ensure LoggingExtractor implements mailpost.Extractor.
var _ mailpost.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with structured logging of every
// extraction outcome.
type LoggingExtractor struct {
	next   mailpost.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next mailpost.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(email *mailpost.RawEmail) (*mailpost.Post, bool) {
	begin := time.Now()
	post, ok := e.next.Extract(email)

	subject := ""
	if email != nil {
		subject = email.Subject
	}

	if !ok {
		e.logger.Info("extraction yielded no post",
			"subject", subject,
			"duration", time.Since(begin),
		)
		return nil, false
	}

	e.logger.Info("post extracted",
		"subject", subject,
		"author", post.Author,
		"category", post.Category,
		"importance", mailpost.Importance(post),
		"duration", time.Since(begin),
	)
	return post, true
}

// Ensure LoggingPublisher implements mailpost.Publisher.
var _ mailpost.Publisher = (*LoggingPublisher)(nil)

// LoggingPublisher wraps a Publisher with logging of publish attempts.
type LoggingPublisher struct {
	next   mailpost.Publisher
	logger *slog.Logger
}

// NewLoggingPublisher creates a new LoggingPublisher.
func NewLoggingPublisher(next mailpost.Publisher, logger *slog.Logger) *LoggingPublisher {
	return &LoggingPublisher{next: next, logger: logger}
}

// Publish delegates to the wrapped publisher and logs the result.
func (p *LoggingPublisher) Publish(ctx context.Context, post *mailpost.Post) error {
	begin := time.Now()
	err := p.next.Publish(ctx, post)

	if err != nil {
		p.logger.Error("publish failed",
			"post", post.ID,
			"err", err,
			"duration", time.Since(begin),
		)
		return err
	}

	p.logger.Info("post published",
		"post", post.ID,
		"author", post.Author,
		"duration", time.Since(begin),
	)
	return nil
}
