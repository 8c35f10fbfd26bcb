package resend

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/resend/resend-go/v3"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/et-services/quoterelay/internal/mailer"
)

// Sender implements mailer.Sender using the Resend API.
type Sender struct {
	client *resend.Client
}

// New creates a new Resend sender. Requests go through an otelhttp
// transport so deliveries show up in traces.
func New(apiKey string) *Sender {
	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	return &Sender{client: resend.NewCustomClient(httpClient, apiKey)}
}

func (s *Sender) Name() string {
	return "Resend"
}

// Send implements mailer.Sender. Every SDK failure is reported as
// mailer.ErrSendFailed.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	req, err := toRequest(email)
	if err != nil {
		return err
	}

	if _, err := s.client.Emails.SendWithContext(ctx, req); err != nil {
		return fmt.Errorf("resend: %w: %w", mailer.ErrSendFailed, err)
	}
	return nil
}

func toRequest(email *mailer.Email) (*resend.SendEmailRequest, error) {
	if err := email.Validate(); err != nil {
		return nil, err
	}

	to := make([]string, len(email.To))
	for i, a := range email.To {
		to[i] = formatAddress(a)
	}

	req := &resend.SendEmailRequest{
		From:    formatAddress(email.From),
		To:      to,
		Subject: email.Subject,
		Text:    email.Text,
	}

	// The SDK wants raw bytes, the form hands us base64.
	for _, a := range email.Attachments {
		content, err := base64.StdEncoding.DecodeString(a.Content)
		if err != nil {
			return nil, fmt.Errorf("resend: attachment %q is not valid base64: %w", a.Filename, err)
		}
		req.Attachments = append(req.Attachments, &resend.Attachment{
			Filename:    a.Filename,
			Content:     content,
			ContentType: a.ContentType,
		})
	}

	return req, nil
}

func formatAddress(a mailer.Address) string {
	if a.Name == "" {
		return a.Email
	}
	return fmt.Sprintf("%s <%s>", a.Name, a.Email)
}
