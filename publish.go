package mailpost

import "context"

// Publisher delivers an extracted post to a downstream consumer,
// typically a blog platform. Publishing never mutates the post.
type Publisher interface {
	Publish(ctx context.Context, post *Post) error
}
