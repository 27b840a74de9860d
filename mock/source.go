package mock

import (
	"context"

	"github.com/awalczak/mailpost"
)

var _ mailpost.EmailSource = (*EmailSource)(nil)

// EmailSource is a mock implementation of mailpost.EmailSource.
type EmailSource struct {
	FetchFn func(ctx context.Context) ([]*mailpost.RawEmail, error)
}

func (s *EmailSource) Fetch(ctx context.Context) ([]*mailpost.RawEmail, error) {
	return s.FetchFn(ctx)
}
