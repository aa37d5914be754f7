package api

import (
	"github.com/Gabohhh/Casinomongo2/internal/domain"     // Domain models
	"github.com/Gabohhh/Casinomongo2/internal/middleware" // Session loader accessors
	"github.com/Gabohhh/Casinomongo2/internal/session"    // Session store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// isAdmin is a pure predicate over the current session's role. It is the only
// access-control mechanism in the panel and every admin route calls it first.
func isAdmin(c *gin.Context) bool {
	sess := middleware.Current(c)
	return sess != nil && sess.Role == string(domain.RoleAdmin)
}

// flash appends a one-shot message to the current session, if any
func flash(c *gin.Context, sessions session.Store, level, message string) {
	token := middleware.Token(c)
	if token == "" {
		return // No session to carry the flash
	}
	if err := sessions.AddFlash(c.Request.Context(), token, session.Flash{Message: message, Level: level}); err != nil {
		logrus.Warnf("failed to store flash message: %v", err)
	}
}

// popFlashes drains the pending flash messages for rendering
func popFlashes(c *gin.Context, sessions session.Store) []session.Flash {
	token := middleware.Token(c)
	if token == "" {
		return nil
	}
	flashes, err := sessions.PopFlashes(c.Request.Context(), token)
	if err != nil {
		logrus.Warnf("failed to pop flash messages: %v", err)
		return nil
	}
	return flashes
}
