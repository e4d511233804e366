// Package mailer defines the outbound email contract.
//
// The application sends a single kind of email (contact-form messages), so the
// surface is deliberately small: a prepared Email and a provider Sender.
package mailer

import (
	"context"
	"errors"
	"fmt"
)

// Errors.
var (
	ErrNoRecipient = errors.New("mailer: recipient required")
	ErrSendFailed  = errors.New("mailer: send failed")
)

// Email represents a fully-prepared message ready for sending.
type Email struct {
	Subject string   // required
	HTML    string   // HTML body
	Text    string   // plain text alternative
	From    string   // override default sender (if provider allows)
	ReplyTo string   // reply-to address
	To      []string // recipients, at least one required
}

// Sender is the minimal interface email providers implement.
type Sender interface {
	// Send delivers an email. The Email must have To and Subject set.
	Send(ctx context.Context, email *Email) error
}

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}
