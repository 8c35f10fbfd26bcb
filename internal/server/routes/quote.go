package routes

import (
	"github.com/et-services/quoterelay/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// Quote request endpoints. The Netlify path keeps forms that still post to
// the old function URL working.
const (
	QuotePath       = "/api/v1/quote-request"
	LegacyQuotePath = "/.netlify/functions/quote-request"
)

// SetupQuoteRoutes configures the public quote request endpoints. Every
// method is routed so the handler can answer non-POST requests with 405.
func SetupQuoteRoutes(router *gin.Engine, quote *handlers.QuoteHandler) {
	router.Any(QuotePath, quote.Submit)
	router.Any(LegacyQuotePath, quote.Submit)

	// Any only covers the standard methods. Others (PURGE, PROPFIND, ...)
	// land in NoRoute and still get the handler's 405.
	router.NoRoute(func(c *gin.Context) {
		switch c.Request.URL.Path {
		case QuotePath, LegacyQuotePath:
			quote.Submit(c)
		}
	})
}
