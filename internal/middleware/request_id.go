package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/thrivetrack/backend/internal/logger"
)

// RequestIDHeader carries the correlation ID in both directions
const RequestIDHeader = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or generates one, and puts it
// together with log into the request context
func RequestID(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := logger.WithRequestID(c.Request.Context(), c.GetHeader(RequestIDHeader))
		ctx = logger.WithLogger(ctx, log)
		id := logger.RequestIDFromContext(ctx)

		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
