package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionCookie names the anonymous session cookie that keys flash
	// messages. It carries no identity.
	SessionCookie = "admin_session"

	sessionKey    = "session_id"
	sessionMaxAge = 30 * 24 * 60 * 60
)

// Session ensures every visitor has a session id cookie and exposes it to
// handlers via SessionID.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookie)
		if err != nil || sid == "" {
			sid = uuid.New().String()
			c.SetCookie(SessionCookie, sid, sessionMaxAge, "/", "", false, true)
		}
		c.Set(sessionKey, sid)
		c.Next()
	}
}

// SessionID returns the session id set by Session, or "".
func SessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
