package main

import (
	"fmt"

	"github.com/awalczak/mailpost"
	"github.com/awalczak/mailpost/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	posts, err := deps.Posts.FindPosts(deps.Ctx, mailpost.PostFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mailpost.ErrorMessage(err))
		return err
	}

	if len(posts) == 0 {
		fmt.Fprintln(deps.Stdout, "No posts to export.")
		return nil
	}

	writer := fs.NewWriter(c.Dir)
	exported := 0
	for _, post := range posts {
		if err := writer.CreatePost(deps.Ctx, post); err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", post.ID, mailpost.ErrorMessage(err))
			continue
		}
		exported++
	}

	fmt.Fprintf(deps.Stdout, "Exported %d posts to %s\n", exported, c.Dir)
	return nil
}
