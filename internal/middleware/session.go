package middleware

import (
	"github.com/Gabohhh/Casinomongo2/internal/session" // Session store

	"github.com/gin-gonic/gin" // Gin web framework
)

// Cookie and context keys used by the session loader
const (
	SessionCookie = "session"       // Name of the session cookie
	SessionKey    = "session"       // Context key for the session payload
	TokenKey      = "session_token" // Context key for the raw token
)

// SessionLoader resolves the session cookie against the session store and
// attaches the payload to the request context. It never denies access itself;
// each handler decides what an absent session means for its route.
func SessionLoader(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie) // Read the session cookie
		if err == nil && token != "" {
			// Resolve the token; unknown or expired tokens are treated
			// the same as no cookie at all
			if data, err := sessions.Get(c.Request.Context(), token); err == nil {
				c.Set(SessionKey, data) // Request-scoped session payload
				c.Set(TokenKey, token)  // Raw token, for flash writes and logout
			}
		}
		c.Next() // Proceed to the next handler
	}
}

// Current returns the session payload attached by SessionLoader, or nil for
// an unauthenticated request.
func Current(c *gin.Context) *session.Data {
	if v, ok := c.Get(SessionKey); ok {
		if data, ok := v.(*session.Data); ok {
			return data
		}
	}
	return nil
}

// Token returns the raw session token for the current request, or "".
func Token(c *gin.Context) string {
	if v, ok := c.Get(TokenKey); ok {
		if token, ok := v.(string); ok {
			return token
		}
	}
	return ""
}
