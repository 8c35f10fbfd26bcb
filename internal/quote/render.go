package quote

import (
	"fmt"
	"strings"
)

// Placeholder stands in for any field the visitor left blank.
const Placeholder = "-"

// Message is the rendered subject and plaintext body of a quote email.
type Message struct {
	Subject string
	Text    string
}

// Render builds the email for a submission. The output depends only on its
// arguments.
func Render(sub *Submission, ref string) Message {
	kind := sub.Kind()

	return Message{
		Subject: fmt.Sprintf("%s quote request %s from %s", kind.Label(), ref, sub.FullName.Or("Unknown")),
		Text:    renderBody(sub, kind, ref),
	}
}

func renderBody(sub *Submission, kind Kind, ref string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "New %s quote request from the ET Services website\n", kind)
	fmt.Fprintf(&b, "Reference: %s\n\n", ref)

	line(&b, "Name", sub.FullName)
	line(&b, "Email", sub.Email)
	line(&b, "Phone", sub.Phone)
	b.WriteString("\n")

	switch kind {
	case KindRemovals:
		line(&b, "From", sub.From)
		line(&b, "To", sub.To)
		line(&b, "Move size", sub.MoveSize)
		line(&b, "Services required", sub.Services)
	default:
		line(&b, "Postcode", sub.Postcode)
		line(&b, "Service requested", sub.Service)
	}
	line(&b, "Preferred date", sub.Date)
	b.WriteString("\n")

	b.WriteString("Message:\n")
	b.WriteString(sub.Message.Or(Placeholder))
	b.WriteString("\n")

	if n := len(sub.Attachments); n > 0 {
		fmt.Fprintf(&b, "\nAttachments: %d\n", n)
		for _, a := range sub.Attachments {
			fmt.Fprintf(&b, "- %s\n", orPlaceholder(a.Filename))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func line(b *strings.Builder, label string, f Field) {
	fmt.Fprintf(b, "%s: %s\n", label, f.Or(Placeholder))
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}
