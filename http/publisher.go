// Package http provides an HTTP-based implementation of mailpost.Publisher
// for posting extracted posts to a blog platform's JSON API.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/awalczak/mailpost"
)

// DefaultPublishTimeout is the default timeout for HTTP requests.
const DefaultPublishTimeout = 10 * time.Second

// Ensure Publisher implements mailpost.Publisher at compile time.
var _ mailpost.Publisher = (*Publisher)(nil)

// Publisher delivers posts to a remote endpoint as JSON over HTTP.
type Publisher struct {
	client    *http.Client
	endpoint  string
	token     string
	timeout   time.Duration
	converter mailpost.Converter
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultPublishTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(p *Publisher) {
		p.timeout = d
	}
}

// WithToken sets a bearer token sent with every request.
func WithToken(token string) Option {
	return func(p *Publisher) {
		p.token = token
	}
}

// WithConverter sets a converter used to render ContentHTML as Markdown
// for the outgoing body. Posts without HTML content are sent as-is.
func WithConverter(c mailpost.Converter) Option {
	return func(p *Publisher) {
		p.converter = c
	}
}

// NewPublisher creates a Publisher targeting the given endpoint URL.
func NewPublisher(endpoint string, opts ...Option) *Publisher {
	p := &Publisher{
		endpoint: endpoint,
		timeout:  DefaultPublishTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.client = &http.Client{
		Timeout: p.timeout,
	}

	return p
}

// payload is the wire format for a published post.
type payload struct {
	Author     string           `json:"author"`
	Body       string           `json:"body"`
	Category   string           `json:"category"`
	Importance float64          `json:"importance"`
	Timestamp  time.Time        `json:"timestamp"`
	Media      []mailpost.Media `json:"media,omitempty"`
	Links      []mailpost.Link  `json:"links,omitempty"`
	Source     mailpost.Source  `json:"source"`
}

// Publish sends the post to the configured endpoint. The post itself is
// never mutated; a rendered copy goes over the wire.
func (p *Publisher) Publish(ctx context.Context, post *mailpost.Post) error {
	if post == nil {
		return mailpost.Errorf(mailpost.EINVALID, "nil post")
	}

	body := post.Content
	if p.converter != nil && post.ContentHTML != "" {
		rendered, err := p.converter.Convert(post.ContentHTML)
		if err == nil {
			body = rendered
		}
	}

	data, err := json.Marshal(payload{
		Author:     post.Author,
		Body:       body,
		Category:   string(post.Category),
		Importance: mailpost.Importance(post),
		Timestamp:  post.Timestamp,
		Media:      post.Media,
		Links:      post.Links,
		Source:     post.Source,
	})
	if err != nil {
		return mailpost.Errorf(mailpost.EINTERNAL, "marshal post: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return mailpost.Errorf(mailpost.EUNAUTHORIZED, "HTTP %d from %s", resp.StatusCode, p.endpoint)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("HTTP %d from %s: %s", resp.StatusCode, p.endpoint, snippet)
	}

	return nil
}
