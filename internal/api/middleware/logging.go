package middleware

import (
	"time"

	"github.com/et-services/quoterelay/internal/logging"
	"github.com/et-services/quoterelay/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger writes one access line per request when the logger has
// request logging enabled (LOG_REQUESTS=true).
func RequestLogger(logger *logging.Logger) gin.HandlerFunc {
	if !logger.LogsRequests() {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.LogHTTPRequest(
			c.Request.Method,
			path,
			utils.GetRealIP(c),
			c.GetString(ContextKeyRequestID),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).String(),
		)
	}
}
