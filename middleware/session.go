package middleware

import (
	"github.com/VibeCart-Commerce/vibecart-backend/session"
	"github.com/gin-gonic/gin"
)

// SessionCookie names the cookie carrying the visitor's session ID.
const SessionCookie = "vc_session"

const sessionContextKey = "session"

// sessionCookieMaxAge keeps the cookie for a day; the session itself only
// lives as long as the process.
const sessionCookieMaxAge = 86400

// SessionMiddleware resolves the visitor's session, creating one on first
// contact, and places it in the request context. Every storefront handler
// downstream works against this explicit session object.
func SessionMiddleware(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(SessionCookie)

		sess := manager.GetOrCreate(c.Request.Context(), id)
		if sess.ID != id {
			c.SetCookie(SessionCookie, sess.ID, sessionCookieMaxAge, "/", "", false, true)
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// SessionFromContext fetches the session placed by SessionMiddleware.
func SessionFromContext(c *gin.Context) (*session.Session, bool) {
	val, exists := c.Get(sessionContextKey)
	if !exists {
		return nil, false
	}
	sess, ok := val.(*session.Session)
	return sess, ok
}
