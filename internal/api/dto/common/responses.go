package common

import "fmt"

// Client-facing messages. The website forms display these verbatim.
const (
	MsgMethodNotAllowed = "Method not allowed"
	MsgNotConfigured    = "Server email is not configured. Please try again later."
	MsgServerError      = "Server error"
	MsgTooLarge         = "Request body too large"
)

// Response is the body of every quote endpoint reply:
// {"ok":true}, {"ok":true,"spam":true} or {"error":"..."}.
type Response struct {
	OK    bool   `json:"ok,omitempty"`
	Spam  bool   `json:"spam,omitempty"`
	Error string `json:"error,omitempty"`
}

// StatusResponse is returned by the health check.
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// NewSuccessResponse creates a new successful response
func NewSuccessResponse() Response {
	return Response{OK: true}
}

// NewSpamResponse is the success-looking reply given to honeypot hits.
func NewSpamResponse() Response {
	return Response{OK: true, Spam: true}
}

// NewErrorResponse creates a new error response
func NewErrorResponse(message string) Response {
	return Response{Error: message}
}

// DeliveryFailedMessage names the provider that rejected the email.
func DeliveryFailedMessage(provider string) string {
	return fmt.Sprintf("Failed to send email via %s.", provider)
}
