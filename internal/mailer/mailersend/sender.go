package mailersend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/et-services/quoterelay/internal/mailer"
)

// DefaultEndpoint is the MailerSend email API.
const DefaultEndpoint = "https://api.mailersend.com/v1/email"

// Sender delivers email through the MailerSend REST API.
type Sender struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// New creates a MailerSend sender. An empty endpoint selects DefaultEndpoint.
func New(apiKey, endpoint string) *Sender {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Sender{
		apiKey:   apiKey,
		endpoint: endpoint,
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// WithHTTPClient replaces the HTTP client, mostly for tests.
func (s *Sender) WithHTTPClient(client *http.Client) *Sender {
	s.client = client
	return s
}

func (s *Sender) Name() string {
	return "MailerSend"
}

type emailPayload struct {
	From        mailer.Address      `json:"from"`
	To          []mailer.Address    `json:"to"`
	Subject     string              `json:"subject"`
	Text        string              `json:"text"`
	Attachments []attachmentPayload `json:"attachments,omitempty"`
}

type attachmentPayload struct {
	Filename    string `json:"filename"`
	Content     string `json:"content"`
	Disposition string `json:"disposition"`
	ContentType string `json:"content_type"`
}

// Send implements mailer.Sender. Transport failures are returned as is;
// a non-2xx answer is returned as *mailer.APIError.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}

	payload := emailPayload{
		From:    email.From,
		To:      email.To,
		Subject: email.Subject,
		Text:    email.Text,
	}
	for _, a := range email.Attachments {
		payload.Attachments = append(payload.Attachments, attachmentPayload{
			Filename:    a.Filename,
			Content:     a.Content,
			Disposition: a.Disposition,
			ContentType: a.ContentType,
		})
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal mailersend payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create mailersend request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call mailersend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return &mailer.APIError{
			Provider:   s.Name(),
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
