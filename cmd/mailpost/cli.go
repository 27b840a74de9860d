package main

import (
	"context"
	"io"

	"github.com/awalczak/mailpost"
	"github.com/awalczak/mailpost/batch"
	"github.com/awalczak/mailpost/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Posts     mailpost.PostService
	Extractor mailpost.Extractor
	Processor *batch.Processor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Run     RunCmd     `cmd:"" help:"Process an mbox file: extract posts, store, optionally publish"`
	Extract ExtractCmd `cmd:"" help:"Extract a post from a single raw email file and print it as JSON"`
	List    ListCmd    `cmd:"" help:"List stored posts"`
	Show    ShowCmd    `cmd:"" help:"Show a stored post as markdown"`
	Export  ExportCmd  `cmd:"" help:"Export stored posts as markdown files"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored post"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	Mbox        string  `arg:"" help:"Path to the mbox file"`
	Rules       string  `short:"r" help:"Path to a JSON rules file (defaults built in)"`
	Publish     string  `short:"p" help:"Publish stored posts to this endpoint URL"`
	RateLimit   float64 `default:"1.0" help:"Publish requests per second"`
	Concurrency int     `short:"c" default:"10" help:"Concurrent extraction limit"`
	Verbose     bool    `short:"v" help:"Log each extraction and publish"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File  string `arg:"" help:"Path to a raw RFC 822 email file"`
	Rules string `short:"r" help:"Path to a JSON rules file (defaults built in)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Author    string `short:"a" help:"Filter by author"`
	Category  string `short:"C" help:"Filter by category"`
	Published bool   `help:"Only published posts"`
	Limit     int    `short:"n" help:"Maximum number of posts to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Post ID"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir string `arg:"" help:"Target directory for markdown files"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Post ID"`
	Force bool   `help:"Confirm deletion"`
}
