// Package batch provides batch processing orchestration. It coordinates
// fetching notification emails, extracting posts, storage, and optional
// publishing.
package batch

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/awalczak/mailpost"
	"github.com/awalczak/mailpost/bloom"
)

// Processor orchestrates a batch run over an email source.
type Processor struct {
	Source    mailpost.EmailSource
	Extractor mailpost.Extractor
	Posts     mailpost.PostWriter
	Publisher mailpost.Publisher

	// Marker flags posts as published after a successful publish.
	// Optional; typically the same store backing Posts.
	Marker mailpost.PostMarker

	// Seen tracks already-processed email IDs across runs. Optional.
	Seen *bloom.Filter

	// Limiter throttles publish calls. Optional.
	Limiter *rate.Limiter

	Concurrency int
}

// Result holds the outcome of a batch run.
type Result struct {
	Extracted int
	Absent    int
	Skipped   int
	Failed    int
	Published int
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	EmailID   string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressExtracted
	ProgressAbsent
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// extractResult holds the outcome of extracting a single email.
type extractResult struct {
	position int
	emailID  string
	post     *mailpost.Post
	ok       bool
}

// Run processes every email from the source: extract concurrently, then
// store and publish sequentially in source order. The progress callback,
// if provided, receives events as processing proceeds.
func (p *Processor) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	emails, err := p.Source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch emails: %w", err)
	}

	var result Result

	// Drop already-seen emails before extraction.
	pending := make([]*mailpost.RawEmail, 0, len(emails))
	for _, email := range emails {
		if p.Seen != nil && email.ID != "" && p.Seen.Test(email.ID) {
			result.Skipped++
			if progress != nil {
				progress(ProgressEvent{
					Type:    ProgressSkipped,
					EmailID: email.ID,
				})
			}
			continue
		}
		pending = append(pending, email)
	}

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	total := len(pending)
	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	resultCh := make(chan extractResult, total)

	var completed atomic.Int64

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, email := range pending {
			i, email := i, email
			g.Go(func() error {
				post, ok := p.Extractor.Extract(email)
				resultCh <- extractResult{
					position: i,
					emailID:  email.ID,
					post:     post,
					ok:       ok,
				}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in source order.
	results := make([]extractResult, total)
	for r := range resultCh {
		completed.Add(1)
		results[r.position] = r

		if progress != nil {
			eventType := ProgressExtracted
			if !r.ok {
				eventType = ProgressAbsent
			}
			progress(ProgressEvent{
				Type:      eventType,
				Completed: int(completed.Load()),
				Total:     total,
				EmailID:   r.emailID,
			})
		}
	}

	// Store and publish sequentially so posts land in source order.
	for _, r := range results {
		if !r.ok {
			result.Absent++
			p.markSeen(r.emailID)
			continue
		}

		if err := p.Posts.CreatePost(ctx, r.post); err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:    ProgressFailed,
					EmailID: r.emailID,
					Error:   err,
				})
			}
			continue
		}
		result.Extracted++
		p.markSeen(r.emailID)

		if p.Publisher == nil {
			continue
		}

		if p.Limiter != nil {
			if err := p.Limiter.Wait(ctx); err != nil {
				return &result, err
			}
		}

		if err := p.Publisher.Publish(ctx, r.post); err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:    ProgressFailed,
					EmailID: r.emailID,
					Error:   err,
				})
			}
			continue
		}
		result.Published++

		if p.Marker != nil {
			if err := p.Marker.MarkPublished(ctx, r.post.ID); err != nil {
				result.Failed++
				if progress != nil {
					progress(ProgressEvent{
						Type:    ProgressFailed,
						EmailID: r.emailID,
						Error:   err,
					})
				}
			}
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return &result, nil
}

func (p *Processor) markSeen(id string) {
	if p.Seen != nil && id != "" {
		p.Seen.Add(id)
	}
}
