package routes

import (
	"github.com/et-services/quoterelay/internal/api/handlers"
)

// Handlers contains all the route handlers
type Handlers struct {
	Quote  *handlers.QuoteHandler
	Health *handlers.HealthHandler
}

// Options holds the settings global middleware needs.
type Options struct {
	AllowedOrigins []string
	MaxBodyBytes   int64
}
