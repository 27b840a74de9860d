package mailpost

import "context"

// RawEmail is a notification email as delivered by an email source.
// The extraction pipeline treats it as immutable and never retains it
// beyond a single call.
type RawEmail struct {
	// ID is an opaque identifier passed through for the caller's
	// bookkeeping. Extraction logic never reads it.
	ID string `json:"id"`

	// Subject is the notification subject line. May be empty.
	Subject string `json:"subject"`

	// Sender is the From address.
	Sender string `json:"sender"`

	// Body is the message body, HTML or plain text.
	Body string `json:"body"`

	// Date is the raw timestamp string in whatever format the source
	// supplied. Parsed leniently; unparsable values fall back to the
	// extraction time.
	Date string `json:"date"`
}

// EmailSource supplies notification emails for processing.
// Implementations hide where the mail comes from (mbox file, directory
// of raw messages, etc).
type EmailSource interface {
	// Fetch returns the available emails in source order.
	// Individual unparsable messages are skipped, not surfaced as errors.
	Fetch(ctx context.Context) ([]*RawEmail, error)
}
