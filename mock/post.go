package mock

import (
	"context"

	"github.com/awalczak/mailpost"
)

var (
	_ mailpost.PostService = (*PostService)(nil)
	_ mailpost.PostWriter  = (*PostService)(nil)
	_ mailpost.PostMarker  = (*PostService)(nil)
)

// PostService is a mock implementation of mailpost.PostService.
type PostService struct {
	CreatePostFn    func(ctx context.Context, post *mailpost.Post) error
	FindPostByIDFn  func(ctx context.Context, id string) (*mailpost.Post, error)
	FindPostsFn     func(ctx context.Context, filter mailpost.PostFilter) ([]*mailpost.Post, error)
	MarkPublishedFn func(ctx context.Context, id string) error
	DeletePostFn    func(ctx context.Context, id string) error
}

func (s *PostService) CreatePost(ctx context.Context, post *mailpost.Post) error {
	return s.CreatePostFn(ctx, post)
}

func (s *PostService) FindPostByID(ctx context.Context, id string) (*mailpost.Post, error) {
	return s.FindPostByIDFn(ctx, id)
}

func (s *PostService) FindPosts(ctx context.Context, filter mailpost.PostFilter) ([]*mailpost.Post, error) {
	return s.FindPostsFn(ctx, filter)
}

func (s *PostService) MarkPublished(ctx context.Context, id string) error {
	return s.MarkPublishedFn(ctx, id)
}

func (s *PostService) DeletePost(ctx context.Context, id string) error {
	return s.DeletePostFn(ctx, id)
}
