package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"golang.org/x/time/rate"

	"github.com/awalczak/mailpost"
	"github.com/awalczak/mailpost/batch"
	"github.com/awalczak/mailpost/bloom"
	"github.com/awalczak/mailpost/extract"
	"github.com/awalczak/mailpost/goquery"
	"github.com/awalczak/mailpost/htmltomarkdown"
	mailposthttp "github.com/awalczak/mailpost/http"
	"github.com/awalczak/mailpost/mbox"
	mailpostslog "github.com/awalczak/mailpost/slog"
	"github.com/awalczak/mailpost/sqlite"
	"github.com/awalczak/mailpost/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Service for end-to-end testing.
	PostService mailpost.PostService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("mailpost"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'mailpost --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set MAILPOST_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.PostService = sqlite.NewPostService(m.DB)
	deps.DB = m.DB
	deps.Posts = m.PostService

	// Wire command-specific dependencies based on command
	var seen *bloom.Filter
	if cmd == "run" {
		ruleset, err := loadRuleset(cli.Run.Rules)
		if err != nil {
			return err
		}

		var extractor mailpost.Extractor = &extract.Pipeline{
			Rules:   ruleset,
			Parser:  goquery.NewParser(),
			Article: trafilatura.NewExtractor(),
		}

		var publisher mailpost.Publisher
		if cli.Run.Publish != "" {
			publisher = mailposthttp.NewPublisher(cli.Run.Publish,
				mailposthttp.WithToken(os.Getenv("MAILPOST_TOKEN")),
				mailposthttp.WithConverter(htmltomarkdown.NewConverter()),
			)
		}

		if cli.Run.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			extractor = mailpostslog.NewLoggingExtractor(extractor, logger)
			if publisher != nil {
				publisher = mailpostslog.NewLoggingPublisher(publisher, logger)
			}
		}

		seen = loadSeenFilter(seenPath(m.DBPath))

		processor := &batch.Processor{
			Source:      mbox.NewSource(cli.Run.Mbox),
			Extractor:   extractor,
			Posts:       m.PostService,
			Publisher:   publisher,
			Seen:        seen,
			Limiter:     rate.NewLimiter(rate.Limit(cli.Run.RateLimit), 1),
			Concurrency: cli.Run.Concurrency,
		}
		if publisher != nil {
			processor.Marker = m.PostService
		}
		deps.Processor = processor
	}

	if cmd == "extract" {
		ruleset, err := loadRuleset(cli.Extract.Rules)
		if err != nil {
			return err
		}

		deps.Extractor = &extract.Pipeline{
			Rules:   ruleset,
			Parser:  goquery.NewParser(),
			Article: trafilatura.NewExtractor(),
		}
	}

	runErr := kongCtx.Run(deps)

	if seen != nil {
		saveSeenFilter(seenPath(m.DBPath), seen)
	}

	return runErr
}

// Bloom filter sizing for the persisted seen-email set.
const (
	seenExpectedEmails    = 10000
	seenFalsePositiveRate = 0.01
)

// seenPath returns the location of the persisted seen-email filter,
// next to the database.
func seenPath(dbPath string) string {
	return dbPath + ".seen"
}

// loadSeenFilter restores the seen-email filter from disk. A missing or
// unreadable file yields a fresh filter.
func loadSeenFilter(path string) *bloom.Filter {
	seen := bloom.NewFilter(seenExpectedEmails, seenFalsePositiveRate)

	file, err := os.Open(path)
	if err != nil {
		return seen
	}
	defer file.Close()

	if _, err := seen.ReadFrom(file); err != nil {
		return bloom.NewFilter(seenExpectedEmails, seenFalsePositiveRate)
	}
	return seen
}

// saveSeenFilter persists the filter. A failed save only costs dedup on
// the next run.
func saveSeenFilter(path string, seen *bloom.Filter) {
	file, err := os.Create(path)
	if err != nil {
		return
	}
	defer file.Close()

	_, _ = seen.WriteTo(file)
}

// loadRuleset compiles the extraction rules, either the built-in defaults
// or a JSON rules file.
func loadRuleset(path string) (*mailpost.Ruleset, error) {
	rules := mailpost.DefaultRules()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read rules file: %w", err)
		}
		rules = &mailpost.Rules{}
		if err := json.Unmarshal(data, rules); err != nil {
			return nil, fmt.Errorf("failed to parse rules file: %w", err)
		}
	}

	ruleset, err := rules.Compile()
	if err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	return ruleset, nil
}

func defaultDBPath() string {
	if path := os.Getenv("MAILPOST_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "mailpost.db"
	}
	dir := filepath.Join(home, ".mailpost")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "mailpost.db")
}
