package main

import (
	"fmt"

	"github.com/awalczak/mailpost"
	"github.com/awalczak/mailpost/fs"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	post, err := deps.Posts.FindPostByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mailpost.ErrorMessage(err))
		return err
	}

	fmt.Fprint(deps.Stdout, fs.FormatPost(post))
	return nil
}
