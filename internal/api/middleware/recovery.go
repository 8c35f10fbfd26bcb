package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/et-services/quoterelay/internal/api/dto/common"
	"github.com/et-services/quoterelay/internal/logging"
	"github.com/et-services/quoterelay/internal/utils"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into 500 {"error":"Server error"}.
func Recovery(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("[PANIC] %s %s | %s | %s | %v\n%s",
					c.Request.Method,
					c.Request.URL.Path,
					utils.GetRealIP(c),
					c.GetString(ContextKeyRequestID),
					rec,
					debug.Stack(),
				)

				_ = c.Error(fmt.Errorf("panic: %v", rec))
				c.AbortWithStatusJSON(http.StatusInternalServerError, common.NewErrorResponse(common.MsgServerError))
			}
		}()

		c.Next()
	}
}
