package middleware

import (
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const RequestIDKey = "requestID"

// RequestID attaches a request id to the context and response, reusing the
// client-provided X-Request-ID when present.
func RequestID() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)

		c.Next()
	}
}
