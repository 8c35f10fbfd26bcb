package service

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/et-services/quoterelay/internal/config"
	"github.com/et-services/quoterelay/internal/logging"
	"github.com/et-services/quoterelay/internal/mailer"
	"github.com/et-services/quoterelay/internal/quote"
)

// Mock Sender
type mockSender struct {
	mu       sync.Mutex
	sent     []*mailer.Email
	sendFunc func(ctx context.Context, email *mailer.Email) error
}

func (m *mockSender) Send(ctx context.Context, email *mailer.Email) error {
	m.mu.Lock()
	m.sent = append(m.sent, email)
	m.mu.Unlock()
	if m.sendFunc != nil {
		return m.sendFunc(ctx, email)
	}
	return nil
}

func (m *mockSender) Name() string { return "MailerSend" }

func testMail() config.Mail {
	return config.Mail{
		Provider:  config.ProviderMailerSend,
		APIKey:    "mlsn.test",
		FromEmail: "web@example.com",
		ToEmail:   "office@example.com",
		FromName:  "ET Services Website",
		ToName:    "ET Services",
	}
}

func newTestService(sender mailer.Sender, mail config.Mail) (*QuoteService, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewQuoteService(sender, mail, logging.NewWithWriter(&buf, logging.LevelDebug)), &buf
}

func TestSubmit_Handyman(t *testing.T) {
	sender := &mockSender{}
	svc, _ := newTestService(sender, testMail())

	res, err := svc.Submit(context.Background(), &quote.Submission{
		FullName: "Jane",
		Email:    "j@x.com",
		Postcode: "E1",
		Service:  "Plumbing",
	})
	require.NoError(t, err)

	assert.False(t, res.Spam)
	assert.Equal(t, quote.KindHandyman, res.Kind)
	assert.Regexp(t, `^ET-\d{6}$`, res.Reference)

	require.Len(t, sender.sent, 1)
	email := sender.sent[0]
	assert.Equal(t, mailer.Address{Email: "web@example.com", Name: "ET Services Website"}, email.From)
	assert.Equal(t, []mailer.Address{{Email: "office@example.com", Name: "ET Services"}}, email.To)
	assert.Contains(t, email.Subject, "Handyman services")
	assert.Contains(t, email.Subject, "Jane")
	assert.Contains(t, email.Subject, res.Reference)
	assert.Contains(t, email.Text, "Postcode: E1")
	assert.Contains(t, email.Text, "Service requested: Plumbing")
	assert.Empty(t, email.Attachments)
}

func TestSubmit_RemovalsWithAttachments(t *testing.T) {
	sender := &mockSender{}
	svc, _ := newTestService(sender, testMail())

	res, err := svc.Submit(context.Background(), &quote.Submission{
		FullName: "Bob",
		From:     "Leeds",
		To:       "York",
		MoveSize: "2-bed",
		Attachments: []quote.Attachment{
			{Filename: "sofa.jpg", Base64: "aGVsbG8=", ContentType: "image/jpeg"},
			{Filename: "list.bin", Base64: "AA=="},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, quote.KindRemovals, res.Kind)

	require.Len(t, sender.sent, 1)
	email := sender.sent[0]
	assert.Contains(t, email.Subject, "Removal services")
	assert.Contains(t, email.Text, "From: Leeds")
	assert.Contains(t, email.Text, "To: York")
	assert.Contains(t, email.Text, "Move size: 2-bed")
	assert.Equal(t, []mailer.Attachment{
		{Filename: "sofa.jpg", Content: "aGVsbG8=", ContentType: "image/jpeg", Disposition: "attachment"},
		{Filename: "list.bin", Content: "AA==", ContentType: "application/octet-stream", Disposition: "attachment"},
	}, email.Attachments)
}

func TestSubmit_SpamIsNotSent(t *testing.T) {
	sender := &mockSender{}
	mail := testMail()
	mail.APIKey = ""
	svc, _ := newTestService(sender, mail)

	res, err := svc.Submit(context.Background(), &quote.Submission{FullName: "Bot", Company: true})
	require.NoError(t, err)
	assert.True(t, res.Spam)
	assert.Empty(t, sender.sent)
}

func TestSubmit_NotConfigured(t *testing.T) {
	sender := &mockSender{}
	mail := testMail()
	mail.APIKey = "  "
	svc, logs := newTestService(sender, mail)

	_, err := svc.Submit(context.Background(), &quote.Submission{FullName: "Jane"})
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Empty(t, sender.sent)
	assert.Contains(t, logs.String(), "MailerSend API key is missing")
}

func TestSubmit_ProviderRejection(t *testing.T) {
	sender := &mockSender{sendFunc: func(ctx context.Context, email *mailer.Email) error {
		return &mailer.APIError{Provider: "MailerSend", StatusCode: 401, Body: "Unauthenticated."}
	}}
	svc, logs := newTestService(sender, testMail())

	_, err := svc.Submit(context.Background(), &quote.Submission{FullName: "Jane"})
	require.Error(t, err)
	assert.ErrorIs(t, err, mailer.ErrSendFailed)
	assert.Contains(t, logs.String(), "MailerSend error: Unauthenticated.")
}

func TestSubmit_TransportError(t *testing.T) {
	boom := errors.New("connection refused")
	sender := &mockSender{sendFunc: func(ctx context.Context, email *mailer.Email) error {
		return boom
	}}
	svc, _ := newTestService(sender, testMail())

	_, err := svc.Submit(context.Background(), &quote.Submission{})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, mailer.ErrSendFailed)
}

func TestSubmit_NoDeduplication(t *testing.T) {
	sender := &mockSender{}
	svc, _ := newTestService(sender, testMail())
	sub := &quote.Submission{FullName: "Jane", Postcode: "E1"}

	first, err := svc.Submit(context.Background(), sub)
	require.NoError(t, err)
	second, err := svc.Submit(context.Background(), sub)
	require.NoError(t, err)

	assert.Len(t, sender.sent, 2)
	assert.NotEqual(t, first.Reference, second.Reference)
}
