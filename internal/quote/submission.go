package quote

import (
	"bytes"
	"encoding/json"
)

// DefaultContentType is used for attachments that do not declare one.
const DefaultContentType = "application/octet-stream"

// Kind is the business line a submission belongs to.
type Kind string

const (
	KindHandyman Kind = "handyman"
	KindRemovals Kind = "removals"
)

// Label is the human-readable name used in subjects.
func (k Kind) Label() string {
	if k == KindRemovals {
		return "Removal services"
	}
	return "Handyman services"
}

// Submission is one quote request as posted by either website form.
type Submission struct {
	FullName Field `json:"fullName"`
	Email    Field `json:"email"`
	Phone    Field `json:"phone"`

	// Handyman form
	Postcode Field `json:"postcode"`
	Service  Field `json:"service"`
	Date     Field `json:"date"`
	Message  Field `json:"message"`

	// Removals form
	From     Field `json:"from"`
	To       Field `json:"to"`
	MoveSize Field `json:"moveSize"`
	Services Field `json:"services"`

	Attachments []Attachment `json:"attachments"`

	// Company is a honeypot hidden from humans.
	Company Honeypot `json:"company"`
}

// Attachment is a file uploaded with the form, already base64 encoded by
// the browser.
type Attachment struct {
	Filename    string `json:"filename"`
	Base64      string `json:"base64"`
	ContentType string `json:"content_type"`
}

// UnmarshalJSON accepts "content" as an alias for "base64".
func (a *Attachment) UnmarshalJSON(data []byte) error {
	var raw struct {
		Filename    Field  `json:"filename"`
		Base64      string `json:"base64"`
		Content     string `json:"content"`
		ContentType Field  `json:"content_type"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	a.Filename = raw.Filename.String()
	a.Base64 = raw.Base64
	if a.Base64 == "" {
		a.Base64 = raw.Content
	}
	a.ContentType = raw.ContentType.String()
	return nil
}

// MIMEType returns the declared content type or DefaultContentType.
func (a Attachment) MIMEType() string {
	if a.ContentType == "" {
		return DefaultContentType
	}
	return a.ContentType
}

// IsSpam reports whether the honeypot field was filled in.
func (s *Submission) IsSpam() bool {
	return bool(s.Company)
}

// Kind classifies the submission.
func (s *Submission) Kind() Kind {
	if s.From.Present() || s.To.Present() || s.MoveSize.Present() {
		return KindRemovals
	}
	return KindHandyman
}

// Decode parses a JSON object. An empty body decodes to an empty submission.
func Decode(body []byte) (*Submission, error) {
	sub := &Submission{}
	if len(bytes.TrimSpace(body)) == 0 {
		return sub, nil
	}
	if err := json.Unmarshal(body, sub); err != nil {
		return nil, err
	}
	return sub, nil
}
