// File: middleware/session.go
package middleware

import (
	"net/http"

	"cuidarmais/config"
	"cuidarmais/session"

	"github.com/gin-gonic/gin"
)

// SessionKey is the gin context key holding the restored session.
const SessionKey = "session"

// RequireSession guards authenticated pages. A request without a restorable
// session is sent to the login page; every guarded route therefore sees
// either a token or a redirect, never neither.
func RequireSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(config.AppConfig.SessionCookieName)
		if err != nil || sid == "" {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		sess, err := store.Get(c.Request.Context(), sid)
		if err != nil || !sess.IsAuthenticated() {
			c.SetCookie(config.AppConfig.SessionCookieName, "", -1, "/", "", false, true)
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Set(SessionKey, sess)
		c.Next()
	}
}

// SessionFrom returns the session restored by RequireSession.
func SessionFrom(c *gin.Context) *session.Session {
	if v, ok := c.Get(SessionKey); ok {
		if sess, ok := v.(*session.Session); ok {
			return sess
		}
	}
	return nil
}
