package middleware

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/et-services/quoterelay/internal/api/dto/common"

	"github.com/gin-gonic/gin"
)

// ContextKeyRawBody holds the request body read by LimitBody.
const ContextKeyRawBody = "rawBody"

// LimitBody reads the request body once, rejecting anything above
// maxBytes with 413, and restores it for the handler. Attachments arrive
// base64 encoded inside the JSON, so the cap has to leave room for them.
func LimitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.Body == http.NoBody {
			c.Next()
			return
		}

		reader := http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		bodyBytes, err := io.ReadAll(reader)
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, common.NewErrorResponse(common.MsgTooLarge))
				return
			}
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, common.NewErrorResponse(common.MsgServerError))
			return
		}

		c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		c.Set(ContextKeyRawBody, bodyBytes)

		c.Next()
	}
}
