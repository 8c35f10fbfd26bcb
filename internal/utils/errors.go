package utils

import (
	"github.com/et-services/quoterelay/internal/api/dto/common"
	"github.com/et-services/quoterelay/internal/logging"

	"github.com/gin-gonic/gin"
)

// HandleError logs err against the request and replies with
// {"error": message}. Error details never reach the client.
func HandleError(c *gin.Context, logger *logging.Logger, err error, status int, message string) {
	if err != nil {
		_ = c.Error(err)
	}

	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)

	c.AbortWithStatusJSON(status, common.NewErrorResponse(message))
}
