package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/thrivetrack/backend/internal/logger"
)

// UserIDHeader names the journal owner of a request
const UserIDHeader = "X-User-ID"

// UserScope resolves whose journal a request reads: the X-User-ID header,
// then the user_id query parameter, then defaultUserID. It is not
// authentication.
func UserScope(defaultUserID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" {
			userID = strings.TrimSpace(c.Query("user_id"))
		}
		if userID == "" {
			userID = defaultUserID
		}

		c.Set("user_id", userID)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), userID))

		c.Next()
	}
}
