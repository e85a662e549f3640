package middleware

import (
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		attrs := []logger.Attr{
			logger.String("method", c.Request.Method),
			logger.String("path", path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("latency", time.Since(start)),
			logger.String("client_ip", c.ClientIP()),
		}
		if id, ok := c.Get(RequestIDKey); ok {
			if requestID, isString := id.(string); isString {
				attrs = append(attrs, logger.String("request_id", requestID))
			}
		}
		if errMsg, ok := c.Get("error"); ok {
			if msg, isString := errMsg.(string); isString {
				attrs = append(attrs, logger.String("error", msg))
			}
		}

		log.LogAttrs(c.Request.Context(), logger.InfoLevel, "request", attrs...)
	}
}
