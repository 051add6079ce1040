package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionIDKey is the gin context key holding the client session identifier.
const SessionIDKey = "sessionID"

// SessionHeader is the header clients echo back between requests. Drafts and
// other session-scoped state are keyed by it.
const SessionHeader = "X-Session-ID"

// SessionMiddleware assigns a session ID to clients that don't present one
// and makes it available to handlers. The ID is returned in the response
// header so the client can persist it across an authentication redirect.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			sessionID = uuid.New().String()
		}
		c.Set(SessionIDKey, sessionID)
		c.Header(SessionHeader, sessionID)
		c.Next()
	}
}
