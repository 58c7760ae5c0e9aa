package middleware

import (
	"hospital-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// Context keys set when a request carries a valid session cookie.
const (
	SessionUserKey     = "session_user"
	SessionUserTypeKey = "session_user_type"
)

// SessionReader resolves a session token to the logged-in user.
type SessionReader interface {
	CurrentUser(token string) (*service.UserProfile, error)
}

// Session resolves the session cookie, if any, and attaches the logged-in
// user's identity to the request context. Requests without a valid session
// proceed anonymously; no resource endpoint is gated on authentication.
func Session(cookieName string, sessions SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err == nil && token != "" {
			if user, err := sessions.CurrentUser(token); err == nil {
				c.Set(SessionUserKey, user.Username)
				c.Set(SessionUserTypeKey, user.UserType)
			}
		}
		c.Next()
	}
}
