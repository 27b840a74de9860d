package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/awalczak/mailpost"
	"github.com/awalczak/mailpost/message"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	raw, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	email, err := message.Parse(raw)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mailpost.ErrorMessage(err))
		return err
	}

	post, ok := deps.Extractor.Extract(email)
	if !ok {
		fmt.Fprintln(deps.Stderr, "no post extracted")
		return mailpost.Errorf(mailpost.ENOTFOUND, "no post extracted from %q", c.File)
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(post)
}
