package main

import (
	"fmt"

	"github.com/awalczak/mailpost"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := mailpost.PostFilter{Limit: c.Limit}
	if c.Author != "" {
		filter.Author = &c.Author
	}
	if c.Category != "" {
		category := mailpost.Category(c.Category)
		filter.Category = &category
	}
	if c.Published {
		published := true
		filter.Published = &published
	}

	posts, err := deps.Posts.FindPosts(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mailpost.ErrorMessage(err))
		return err
	}

	if len(posts) == 0 {
		fmt.Fprintln(deps.Stdout, "No posts found. Use 'mailpost run' to process an mbox file.")
		return nil
	}

	for _, p := range posts {
		fmt.Fprintf(deps.Stdout, "%s  %s  %-7s  %s\n",
			p.ID, p.Timestamp.Format("2006-01-02"), p.Category, p.Author)
	}

	return nil
}
