package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// DispositionAttachment marks a file as a regular (non-inline) attachment.
const DispositionAttachment = "attachment"

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoSender indicates no sender address was specified.
	ErrNoSender = errors.New("email must have a sender")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrSendFailed indicates the provider rejected the message.
	ErrSendFailed = errors.New("failed to send email")
)

// Sender delivers a fully prepared Email through one provider.
type Sender interface {
	Send(ctx context.Context, email *Email) error
	// Name is the provider name shown to callers, e.g. "MailerSend".
	Name() string
}

// Address is a mailbox with an optional display name.
type Address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Email is a message ready for delivery.
type Email struct {
	From        Address
	To          []Address
	Subject     string
	Text        string
	Attachments []Attachment
}

// Attachment carries base64 encoded file content.
type Attachment struct {
	Filename    string
	Content     string
	ContentType string
	Disposition string
}

// Validate checks the fields every provider needs.
func (e *Email) Validate() error {
	if strings.TrimSpace(e.From.Email) == "" {
		return ErrNoSender
	}
	if len(e.To) == 0 || strings.TrimSpace(e.To[0].Email) == "" {
		return ErrNoRecipient
	}
	if strings.TrimSpace(e.Subject) == "" {
		return ErrNoSubject
	}
	return nil
}

// APIError is a non-success answer from a provider. It unwraps to
// ErrSendFailed.
type APIError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() error {
	return ErrSendFailed
}
