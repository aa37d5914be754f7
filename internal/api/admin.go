package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Timestamps

	"github.com/Gabohhh/Casinomongo2/internal/auth"       // Password hashing helpers
	"github.com/Gabohhh/Casinomongo2/internal/domain"     // Domain models
	"github.com/Gabohhh/Casinomongo2/internal/middleware" // Session accessors
	"github.com/Gabohhh/Casinomongo2/internal/session"    // Session store
	"github.com/Gabohhh/Casinomongo2/internal/store"      // Document store
	"github.com/Gabohhh/Casinomongo2/internal/utils"      // Formatting helpers

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// ListUsersHandler renders the user management table; admin only
func ListUsersHandler(st store.Store, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Non-admins are silently sent to the dashboard
		if !isAdmin(c) {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
		users, err := st.ListUsers(c.Request.Context())
		if err != nil {
			logrus.Errorf("admin: list users failed: %v", err)
		}
		c.HTML(http.StatusOK, "admin_users.html", gin.H{
			"Users":   users,                   // All users, unfiltered and unpaginated
			"Session": middleware.Current(c),   // For the navbar
			"Flashes": popFlashes(c, sessions), // Pending flash messages
		})
	}
}

// AddUserFormHandler renders the add-user form; admin only
func AddUserFormHandler(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isAdmin(c) {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
		c.HTML(http.StatusOK, "add_user.html", gin.H{
			"Session": middleware.Current(c),
			"Flashes": popFlashes(c, sessions),
		})
	}
}

// AddUserSubmitHandler creates a user from the submitted form; admin only.
// The password is hashed before storage and a blank balance defaults to 0.
func AddUserSubmitHandler(st store.Store, sessions session.Store, bcryptCost int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isAdmin(c) {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
		balance, ok := parseBalance(c.PostForm("balance"))
		if !ok {
			// Malformed numeric input surfaces as a generic add failure
			flash(c, sessions, "danger", "Failed to add user")
			c.Redirect(http.StatusFound, "/admin/users/add")
			return
		}
		hash, err := auth.HashPassword(c.PostForm("password"), bcryptCost)
		if err != nil {
			flash(c, sessions, "danger", "Failed to add user")
			c.Redirect(http.StatusFound, "/admin/users/add")
			return
		}
		user := &domain.User{
			Email:     c.PostForm("email"),           // Unique login key
			Password:  hash,                          // bcrypt hash only
			Role:      parseRole(c.PostForm("role")), // normal, vip or admin
			Balance:   balance,                       // Defaults to 0 when blank
			Active:    c.PostForm("active") == "on",  // Checkbox
			CreatedAt: time.Now(),
		}
		// Duplicate emails fail on the store's uniqueness constraint
		if err := st.CreateUser(c.Request.Context(), user); err != nil {
			logrus.Warnf("admin: add user failed: %v", err)
			flash(c, sessions, "danger", "Failed to add user")
			c.Redirect(http.StatusFound, "/admin/users/add")
			return
		}
		flash(c, sessions, "success", "User added")
		c.Redirect(http.StatusFound, "/admin/users")
	}
}

// EditUserFormHandler renders the edit form for an existing user; admin only
func EditUserFormHandler(st store.Store, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isAdmin(c) {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
		user, err := st.GetUserByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			flash(c, sessions, "danger", "User not found")
			c.Redirect(http.StatusFound, "/admin/users")
			return
		}
		c.HTML(http.StatusOK, "edit_user.html", gin.H{
			"User":    user,
			"Session": middleware.Current(c),
			"Flashes": popFlashes(c, sessions),
		})
	}
}

// EditUserSubmitHandler overwrites the admin-editable fields of a user; admin
// only. Email, role, balance and active are overwritten unconditionally; the
// password is rehashed only when a non-empty new one is submitted.
func EditUserSubmitHandler(st store.Store, sessions session.Store, bcryptCost int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isAdmin(c) {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
		id := c.Param("id")
		user, err := st.GetUserByID(c.Request.Context(), id)
		if err != nil {
			flash(c, sessions, "danger", "User not found")
			c.Redirect(http.StatusFound, "/admin/users")
			return
		}
		balance, ok := parseBalance(c.PostForm("balance"))
		if !ok {
			flash(c, sessions, "danger", "Failed to update user")
			c.Redirect(http.StatusFound, "/admin/users/edit/"+id)
			return
		}
		user.Email = c.PostForm("email")
		user.Role = parseRole(c.PostForm("role"))
		user.Balance = balance
		user.Active = c.PostForm("active") == "on"
		// Optional password change: rehash only when one was submitted
		if password := c.PostForm("password"); password != "" {
			hash, err := auth.HashPassword(password, bcryptCost)
			if err != nil {
				flash(c, sessions, "danger", "Failed to update user")
				c.Redirect(http.StatusFound, "/admin/users/edit/"+id)
				return
			}
			user.Password = hash
		}
		if err := st.UpdateUser(c.Request.Context(), user); err != nil {
			logrus.Warnf("admin: edit user %s failed: %v", id, err)
			flash(c, sessions, "danger", "Failed to update user")
			c.Redirect(http.StatusFound, "/admin/users/edit/"+id)
			return
		}
		flash(c, sessions, "success", "User updated")
		c.Redirect(http.StatusFound, "/admin/users")
	}
}

// DeleteUserHandler hard-deletes a user; admin only. Transactions referencing
// the user are left in place.
func DeleteUserHandler(st store.Store, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isAdmin(c) {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
		if err := st.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
			logrus.Warnf("admin: delete user failed: %v", err)
			flash(c, sessions, "danger", "Failed to delete user")
		} else {
			flash(c, sessions, "success", "User deleted")
		}
		c.Redirect(http.StatusFound, "/admin/users")
	}
}

// TransactionResponse is one row of the transaction history JSON
type TransactionResponse struct {
	Date          string  `json:"date"`           // YYYY-MM-DD HH:MM
	Type          string  `json:"type"`           // deposit, withdrawal or game
	Amount        float64 `json:"amount"`         // Signed amount
	Game          string  `json:"game"`           // Game name or "N/A"
	BalanceChange string  `json:"balance_change"` // Signed display string
	NewBalance    float64 `json:"new_balance"`    // Balance after the transaction
}

// UserTransactionsHandler returns a user's transaction history as JSON sorted
// by date descending. Unlike the UI routes this one answers with explicit
// status codes: 401 for non-admins, 500 with the error text on lookup failure.
func UserTransactionsHandler(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isAdmin(c) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		txs, err := st.UserTransactions(c.Request.Context(), c.Param("user_id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		resp := make([]TransactionResponse, len(txs))
		for i, tx := range txs {
			resp[i] = TransactionResponse{
				Date:          tx.Date.Format(utils.DateMinuteLayout),
				Type:          string(tx.Type),
				Amount:        tx.Amount,
				Game:          tx.Game,
				BalanceChange: tx.BalanceChange,
				NewBalance:    tx.NewBalance,
			}
		}
		c.JSON(http.StatusOK, resp)
	}
}

// parseBalance converts the balance form field, defaulting blank input to 0
func parseBalance(s string) (float64, bool) {
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseRole maps the role form field to a known role, defaulting to normal
func parseRole(s string) domain.Role {
	switch domain.Role(s) {
	case domain.RoleVIP:
		return domain.RoleVIP
	case domain.RoleAdmin:
		return domain.RoleAdmin
	default:
		return domain.RoleNormal
	}
}
