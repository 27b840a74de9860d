package main

import (
	"fmt"

	"github.com/awalczak/mailpost"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return mailpost.Errorf(mailpost.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Posts.DeletePost(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mailpost.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted post %q\n", c.ID)
	return nil
}
