// Package mbox implements mailpost.EmailSource over Unix mbox files
// using emersion/go-mbox.
package mbox

import (
	"context"
	"errors"
	"io"
	"os"

	mboxlib "github.com/emersion/go-mbox"

	"github.com/awalczak/mailpost"
	"github.com/awalczak/mailpost/message"
)

// Ensure Source implements mailpost.EmailSource at compile time.
var _ mailpost.EmailSource = (*Source)(nil)

// Source reads notification emails from a single mbox file.
type Source struct {
	path string
}

// NewSource creates a Source for the mbox file at path. The file is
// opened on each Fetch, not here.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Fetch reads every message in the mbox file in order. Messages that
// fail to parse are skipped.
func (s *Source) Fetch(ctx context.Context) ([]*mailpost.RawEmail, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, mailpost.Errorf(mailpost.EINVALID, "open mbox: %v", err)
	}
	defer file.Close()

	reader := mboxlib.NewReader(file)

	var emails []*mailpost.RawEmail
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		msgReader, err := reader.NextMessage()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return emails, nil
			}
			return nil, mailpost.Errorf(mailpost.EINTERNAL, "read mbox message: %v", err)
		}

		raw, err := io.ReadAll(msgReader)
		if err != nil {
			continue
		}

		email, err := message.Parse(raw)
		if err != nil {
			continue
		}

		emails = append(emails, email)
	}
}
