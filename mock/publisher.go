package mock

import (
	"context"

	"github.com/awalczak/mailpost"
)

var _ mailpost.Publisher = (*Publisher)(nil)

// Publisher is a mock implementation of mailpost.Publisher.
type Publisher struct {
	PublishFn func(ctx context.Context, post *mailpost.Post) error
}

func (p *Publisher) Publish(ctx context.Context, post *mailpost.Post) error {
	return p.PublishFn(ctx, post)
}
