package api

import (
	"github.com/Gabohhh/Casinomongo2/internal/middleware" // Session loader
	"github.com/Gabohhh/Casinomongo2/internal/session"    // Session store
	"github.com/Gabohhh/Casinomongo2/internal/store"      // Document store

	"github.com/gin-gonic/gin" // Gin web framework
)

// RegisterRoutes wires the panel's routes onto the router. The session loader
// runs on every request; authorization stays inside each handler.
func RegisterRoutes(r *gin.Engine, st store.Store, sessions session.Store, bcryptCost int) {
	r.Use(middleware.SessionLoader(sessions)) // Attach session data to every request

	// Public routes
	r.GET("/", HomeHandler())
	r.GET("/login", LoginFormHandler())
	r.POST("/login", LoginSubmitHandler(st, sessions))
	r.GET("/logout", LogoutHandler(sessions))
	r.GET("/dashboard", DashboardHandler(st, sessions))

	// Admin routes; every handler re-verifies isAdmin itself
	adminGroup := r.Group("/admin")
	adminGroup.GET("/users", ListUsersHandler(st, sessions))                            // User list
	adminGroup.GET("/users/add", AddUserFormHandler(sessions))                          // Add form
	adminGroup.POST("/users/add", AddUserSubmitHandler(st, sessions, bcryptCost))       // Add submit
	adminGroup.GET("/users/edit/:id", EditUserFormHandler(st, sessions))                // Edit form
	adminGroup.POST("/users/edit/:id", EditUserSubmitHandler(st, sessions, bcryptCost)) // Edit submit
	adminGroup.GET("/users/delete/:id", DeleteUserHandler(st, sessions))                // Delete
	adminGroup.GET("/transactions/:user_id", UserTransactionsHandler(st))               // History JSON
}
