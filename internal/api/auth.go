package api

import (
	"net/http" // HTTP status codes

	"github.com/Gabohhh/Casinomongo2/internal/auth"       // Password hashing helpers
	"github.com/Gabohhh/Casinomongo2/internal/middleware" // Session loader accessors
	"github.com/Gabohhh/Casinomongo2/internal/session"    // Session store
	"github.com/Gabohhh/Casinomongo2/internal/store"      // Document store

	"github.com/gin-gonic/gin" // Gin web framework
)

// HomeHandler redirects to the dashboard for authenticated callers and to the
// login page otherwise
func HomeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if middleware.Current(c) == nil {
			c.Redirect(http.StatusFound, "/login")
			return
		}
		c.Redirect(http.StatusFound, "/dashboard")
	}
}

// LoginFormHandler renders the login page
func LoginFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Already logged in users go straight to the dashboard
		if middleware.Current(c) != nil {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
		c.HTML(http.StatusOK, "login.html", gin.H{})
	}
}

// LoginSubmitHandler authenticates the submitted credentials and establishes
// a server-side session on success. Unknown email and wrong password produce
// the identical generic failure, so callers cannot enumerate accounts.
func LoginSubmitHandler(st store.Store, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("email")       // Submitted login key
		password := c.PostForm("password") // Submitted plaintext password

		user, err := st.GetUserByEmail(c.Request.Context(), email)
		// A lookup miss and a hash mismatch take the same path
		if err != nil || !auth.CheckPassword(user.Password, password) {
			c.HTML(http.StatusOK, "login.html", gin.H{
				"Error": "Invalid credentials", // Generic, no detail leaked
			})
			return
		}
		// Session caches only id, email and role; balance is re-fetched
		// on every dashboard render
		token, err := sessions.Create(c.Request.Context(), session.Data{
			UserID: user.ID,
			Email:  user.Email,
			Role:   string(user.Role),
		})
		if err != nil {
			c.HTML(http.StatusInternalServerError, "login.html", gin.H{
				"Error": "Login failed, try again",
			})
			return
		}
		// Cookie carries the opaque token only
		c.SetCookie(middleware.SessionCookie, token, int(session.TTL.Seconds()), "/", "", false, true)
		c.Redirect(http.StatusFound, "/dashboard")
	}
}

// LogoutHandler unconditionally clears the session
func LogoutHandler(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := middleware.Token(c); token != "" {
			_ = sessions.Delete(c.Request.Context(), token) // Best effort
		}
		// Expire the cookie regardless
		c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
		c.Redirect(http.StatusFound, "/login")
	}
}
