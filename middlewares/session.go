package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "menu_session"

// SessionMiddleware gives every browsing session an opaque id via cookie.
// The id only scopes the in-memory cart; it carries no identity and is
// not a credential.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(sessionCookie, sid, 60*60*24, "/", "", false, true)
		}
		c.Set("sessionId", sid)
		c.Next()
	}
}
