package service

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/et-services/quoterelay/internal/config"
	"github.com/et-services/quoterelay/internal/logging"
	"github.com/et-services/quoterelay/internal/mailer"
	"github.com/et-services/quoterelay/internal/quote"
)

// Result describes what happened to a submission.
type Result struct {
	Spam      bool
	Kind      quote.Kind
	Reference string
}

// QuoteService relays website quote requests to the office inbox.
type QuoteService struct {
	sender mailer.Sender
	mail   config.Mail
	refs   *quote.ReferenceGenerator
	logger *logging.Logger
	tracer trace.Tracer
}

// NewQuoteService creates a quote service delivering through sender.
func NewQuoteService(sender mailer.Sender, mail config.Mail, logger *logging.Logger) *QuoteService {
	return &QuoteService{
		sender: sender,
		mail:   mail,
		refs:   quote.NewReferenceGenerator(),
		logger: logger,
		tracer: otel.Tracer("github.com/et-services/quoterelay/internal/service"),
	}
}

// ProviderName is the name of the mail provider in use.
func (s *QuoteService) ProviderName() string {
	return s.sender.Name()
}

// Submit runs the spam gate, checks delivery is configured, renders the
// email and sends it once. Nothing is retried or deduplicated.
func (s *QuoteService) Submit(ctx context.Context, sub *quote.Submission) (Result, error) {
	ctx, span := s.tracer.Start(ctx, "QuoteService.Submit")
	defer span.End()

	if sub.IsSpam() {
		span.SetAttributes(attribute.Bool("quote.spam", true))
		s.logger.Info("Dropped honeypot submission")
		return Result{Spam: true}, nil
	}

	if !s.mail.Configured() {
		s.logger.Error("%s API key is missing", s.sender.Name())
		span.SetStatus(codes.Error, "not configured")
		return Result{}, ErrNotConfigured
	}

	ref := s.refs.Next()
	email := s.Compose(sub, ref)
	res := Result{Kind: sub.Kind(), Reference: ref}
	span.SetAttributes(
		attribute.String("quote.kind", string(res.Kind)),
		attribute.String("quote.reference", ref),
		attribute.Int("quote.attachments", len(email.Attachments)),
	)

	if err := s.sender.Send(ctx, email); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delivery failed")

		var apiErr *mailer.APIError
		if errors.As(err, &apiErr) {
			s.logger.Error("%s error: %s", s.sender.Name(), apiErr.Body)
		} else {
			s.logger.Error("%s error: %v", s.sender.Name(), err)
		}
		return res, fmt.Errorf("failed to deliver quote %s: %w", ref, err)
	}

	s.logger.Info("Sent %s quote request %s", res.Kind, ref)
	return res, nil
}

// Compose builds the outbound email for a submission and reference.
func (s *QuoteService) Compose(sub *quote.Submission, ref string) *mailer.Email {
	msg := quote.Render(sub, ref)

	email := &mailer.Email{
		From:    mailer.Address{Email: s.mail.FromEmail, Name: s.mail.FromName},
		To:      []mailer.Address{{Email: s.mail.ToEmail, Name: s.mail.ToName}},
		Subject: msg.Subject,
		Text:    msg.Text,
	}

	for _, a := range sub.Attachments {
		email.Attachments = append(email.Attachments, mailer.Attachment{
			Filename:    a.Filename,
			Content:     a.Base64,
			ContentType: a.MIMEType(),
			Disposition: mailer.DispositionAttachment,
		})
	}

	return email
}
