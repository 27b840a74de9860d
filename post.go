package mailpost

import (
	"context"
	"time"
)

// Category classifies a notification by the kind of post it announces.
// It is always one of the constants below; subjects that match no category
// pattern classify as CategoryPost.
type Category string

// Category constants, in cascade precedence order. The order is a documented
// tie-break contract: a subject matching more than one pattern (e.g.
// "shared a video") takes the first matching category.
const (
	CategoryPhoto  Category = "photo"
	CategoryStatus Category = "status"
	CategoryShared Category = "shared"
	CategoryVideo  Category = "video"
	CategoryLink   Category = "link"
	CategoryGroup  Category = "group"
	CategoryPage   Category = "page"
	CategoryPost   Category = "post"
)

// Media is an image attached to a post.
type Media struct {
	URL     string `json:"url"`
	AltText string `json:"altText"`
}

// Link is an outbound link found in a post body.
type Link struct {
	URL        string `json:"url"`
	AnchorText string `json:"anchorText"`
}

// Source is an audit snapshot of the originating email. It copies three
// scalar fields; it does not retain the email itself.
type Source struct {
	Subject string `json:"subject"`
	Sender  string `json:"sender"`
	Date    string `json:"date"`
}

// Post is a structured post recovered from a notification email.
// A Post always has a non-empty author and content; any extraction path
// that would produce less yields no post at all.
type Post struct {
	ID string `json:"id"`

	Author   string   `json:"author"`
	Content  string   `json:"content"`
	Category Category `json:"category"`

	// ContentHTML is the inner HTML of the matched content node when the
	// selector cascade produced the content. Empty for fallback-scanned
	// posts. Used by formatters; Content remains the canonical text.
	ContentHTML string `json:"contentHtml,omitempty"`

	// Timestamp is parsed from the source email's date, or the extraction
	// time when the date is unparsable.
	Timestamp time.Time `json:"timestamp"`

	Media []Media `json:"media"`
	Links []Link  `json:"links"`

	Source Source `json:"source"`

	ContentHash string    `json:"contentHash"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the post violates its invariants.
func (p *Post) Validate() error {
	if p.Author == "" {
		return Errorf(EINVALID, "post author required")
	}
	if p.Content == "" {
		return Errorf(EINVALID, "post content required")
	}
	if p.Category == "" {
		return Errorf(EINVALID, "post category required")
	}
	return nil
}

// PostWriter persists posts.
type PostWriter interface {
	CreatePost(ctx context.Context, post *Post) error
}

// PostMarker flags stored posts as published. Typically backed by the
// same store as the PostWriter that created them.
type PostMarker interface {
	// MarkPublished flags a post as published.
	// Returns ENOTFOUND if the post does not exist.
	MarkPublished(ctx context.Context, id string) error
}

// PostService represents a service for managing extracted posts.
type PostService interface {
	// CreatePost persists a new post. Assigns ID, content hash, and
	// creation time.
	CreatePost(ctx context.Context, post *Post) error

	// FindPostByID retrieves a post by ID.
	// Returns ENOTFOUND if the post does not exist.
	FindPostByID(ctx context.Context, id string) (*Post, error)

	// FindPosts retrieves posts matching the filter.
	FindPosts(ctx context.Context, filter PostFilter) ([]*Post, error)

	// MarkPublished flags a post as published.
	// Returns ENOTFOUND if the post does not exist.
	MarkPublished(ctx context.Context, id string) error

	// DeletePost permanently removes a post.
	// Returns ENOTFOUND if the post does not exist.
	DeletePost(ctx context.Context, id string) error
}

// PostFilter represents a filter for FindPosts.
type PostFilter struct {
	ID        *string   `json:"id"`
	Author    *string   `json:"author"`
	Category  *Category `json:"category"`
	Published *bool     `json:"published"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
