package main

import (
	"fmt"

	"github.com/awalczak/mailpost/batch"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Processing %d emails\n", event.Total)
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  fail %s: %v\n", event.EmailID, event.Error)
		case batch.ProgressFinished:
			// Summary printed after the run completes
		}
	}

	result, err := deps.Processor.Run(deps.Ctx, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error processing: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Extracted %d posts (%d absent, %d skipped, %d failed)\n",
		result.Extracted, result.Absent, result.Skipped, result.Failed)
	if c.Publish != "" {
		fmt.Fprintf(deps.Stdout, "  Published %d posts\n", result.Published)
	}

	return nil
}
