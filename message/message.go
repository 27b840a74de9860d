// Package message parses raw RFC 822 messages into mailpost emails
// using emersion/go-message.
package message

import (
	"bytes"
	"io"
	"strings"

	_ "github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"

	"github.com/awalczak/mailpost"
)

// Parse decodes a raw RFC 822 message into a RawEmail. Multipart
// messages prefer the text/html part; text/plain is the fallback.
func Parse(raw []byte) (*mailpost.RawEmail, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, mailpost.Errorf(mailpost.EINVALID, "empty message")
	}

	mr, err := mail.CreateReader(bytes.NewReader(raw))
	if err != nil {
		return nil, mailpost.Errorf(mailpost.EINVALID, "parse message: %v", err)
	}
	defer mr.Close()

	email := &mailpost.RawEmail{
		Date: mr.Header.Get("Date"),
	}

	if id, err := mr.Header.MessageID(); err == nil {
		email.ID = id
	}
	if subject, err := mr.Header.Subject(); err == nil {
		email.Subject = subject
	}
	if addrs, err := mr.Header.AddressList("From"); err == nil && len(addrs) > 0 {
		email.Sender = addrs[0].String()
	}

	var plain, html string
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		} else if err != nil {
			// A broken part does not invalidate what was already read.
			break
		}

		header, ok := part.Header.(*mail.InlineHeader)
		if !ok {
			continue
		}

		contentType, _, err := header.ContentType()
		if err != nil {
			continue
		}

		body, err := io.ReadAll(part.Body)
		if err != nil {
			continue
		}

		switch {
		case strings.EqualFold(contentType, "text/html") && html == "":
			html = string(body)
		case strings.EqualFold(contentType, "text/plain") && plain == "":
			plain = string(body)
		}
	}

	if html != "" {
		email.Body = html
	} else {
		email.Body = plain
	}

	if email.Body == "" {
		return nil, mailpost.Errorf(mailpost.EINVALID, "message has no text or HTML part")
	}

	return email, nil
}
