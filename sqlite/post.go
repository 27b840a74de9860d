package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/awalczak/mailpost"
)

// Compile-time interface verification.
var (
	_ mailpost.PostService = (*PostService)(nil)
	_ mailpost.PostMarker  = (*PostService)(nil)
)

// PostService implements mailpost.PostService using SQLite.
type PostService struct {
	db *DB
}

// NewPostService creates a new PostService.
func NewPostService(db *DB) *PostService {
	return &PostService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreatePost creates a new post.
func (s *PostService) CreatePost(ctx context.Context, post *mailpost.Post) error {
	if err := post.Validate(); err != nil {
		return err
	}

	post.ID = uuid.New().String()
	post.CreatedAt = time.Now().UTC()
	post.ContentHash = hashContent(post.Content)

	media, err := json.Marshal(post.Media)
	if err != nil {
		return fmt.Errorf("failed to marshal media: %w", err)
	}
	links, err := json.Marshal(post.Links)
	if err != nil {
		return fmt.Errorf("failed to marshal links: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO posts (id, author, content, category, content_html, timestamp, media, links,
			source_subject, source_sender, source_date, content_hash, published, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, post.ID, post.Author, post.Content, string(post.Category), post.ContentHTML,
		post.Timestamp.Format(time.RFC3339), string(media), string(links),
		post.Source.Subject, post.Source.Sender, post.Source.Date,
		post.ContentHash, post.Published, post.CreatedAt.Format(time.RFC3339))

	return err
}

const postColumns = `id, author, content, category, content_html, timestamp, media, links,
	source_subject, source_sender, source_date, content_hash, published, created_at`

// scanPost reads one post row from a scanner (either *sql.Row or *sql.Rows).
func scanPost(scan func(dest ...any) error) (*mailpost.Post, error) {
	var post mailpost.Post
	var category, timestamp, media, links, createdAt string

	err := scan(&post.ID, &post.Author, &post.Content, &category, &post.ContentHTML,
		&timestamp, &media, &links,
		&post.Source.Subject, &post.Source.Sender, &post.Source.Date,
		&post.ContentHash, &post.Published, &createdAt)
	if err != nil {
		return nil, err
	}

	post.Category = mailpost.Category(category)

	if post.Timestamp, err = time.Parse(time.RFC3339, timestamp); err != nil {
		return nil, fmt.Errorf("failed to parse timestamp: %w", err)
	}
	if post.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if err := json.Unmarshal([]byte(media), &post.Media); err != nil {
		return nil, fmt.Errorf("failed to unmarshal media: %w", err)
	}
	if err := json.Unmarshal([]byte(links), &post.Links); err != nil {
		return nil, fmt.Errorf("failed to unmarshal links: %w", err)
	}

	return &post, nil
}

// FindPostByID retrieves a post by ID.
func (s *PostService) FindPostByID(ctx context.Context, id string) (*mailpost.Post, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE id = ?`, id)

	post, err := scanPost(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, mailpost.Errorf(mailpost.ENOTFOUND, "post not found")
	}
	if err != nil {
		return nil, err
	}

	return post, nil
}

// FindPosts retrieves posts matching the filter, most recent first.
func (s *PostService) FindPosts(ctx context.Context, filter mailpost.PostFilter) ([]*mailpost.Post, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT ` + postColumns + ` FROM posts WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Author != nil {
		query.WriteString(" AND author = ?")
		args = append(args, *filter.Author)
	}
	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, string(*filter.Category))
	}
	if filter.Published != nil {
		query.WriteString(" AND published = ?")
		args = append(args, *filter.Published)
	}

	query.WriteString(" ORDER BY timestamp DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*mailpost.Post
	for rows.Next() {
		post, err := scanPost(rows.Scan)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	return posts, rows.Err()
}

// MarkPublished flags a post as published.
func (s *PostService) MarkPublished(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "UPDATE posts SET published = 1 WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return mailpost.Errorf(mailpost.ENOTFOUND, "post not found")
	}

	return nil
}

// DeletePost permanently removes a post.
func (s *PostService) DeletePost(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM posts WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return mailpost.Errorf(mailpost.ENOTFOUND, "post not found")
	}

	return nil
}
