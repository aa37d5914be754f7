package api

import (
	"net/http" // HTTP status codes

	"github.com/Gabohhh/Casinomongo2/internal/middleware" // Session loader accessors
	"github.com/Gabohhh/Casinomongo2/internal/session"    // Session store
	"github.com/Gabohhh/Casinomongo2/internal/store"      // Document store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// DashboardHandler renders the dashboard for the logged-in user. The full
// user record is re-fetched by session id so the displayed balance is always
// current, and the global user count is computed on every render.
func DashboardHandler(st store.Store, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Current(c)
		if sess == nil {
			c.Redirect(http.StatusFound, "/login")
			return
		}
		user, err := st.GetUserByID(c.Request.Context(), sess.UserID)
		if err != nil {
			// Session refers to a user that no longer exists
			logrus.Warnf("dashboard: user %s not found: %v", sess.UserID, err)
			c.Redirect(http.StatusFound, "/logout")
			return
		}
		count, err := st.CountUsers(c.Request.Context())
		if err != nil {
			logrus.Warnf("dashboard: user count failed: %v", err)
		}
		c.HTML(http.StatusOK, "dashboard.html", gin.H{
			"User":      user,                    // Full user record
			"UserCount": count,                   // Global user count
			"Session":   sess,                    // Cached id/email/role
			"Flashes":   popFlashes(c, sessions), // Pending flash messages
		})
	}
}
