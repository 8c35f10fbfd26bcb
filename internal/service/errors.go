package service

import "errors"

// Sentinel errors for service layer
var (
	// ErrNotConfigured means no API key is set for the mail provider.
	ErrNotConfigured = errors.New("email delivery is not configured")
)
