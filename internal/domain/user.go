package domain

import "time"

// Role is the access-level tag on a user account
type Role string

// Supported roles
const (
	RoleNormal Role = "normal" // Regular player
	RoleVIP    Role = "vip"    // VIP player
	RoleAdmin  Role = "admin"  // Grants access to the management routes
)

// User Model
type User struct {
	ID        string    `bson:"_id" json:"_id"`               // ObjectID hex string
	Email     string    `bson:"email" json:"email"`           // Unique email, used as the login key
	Password  string    `bson:"password" json:"password"`     // bcrypt hash, never plaintext
	Role      Role      `bson:"role" json:"role"`             // normal, vip or admin
	Balance   float64   `bson:"balance" json:"balance"`       // Stored currency amount, directly editable
	Active    bool      `bson:"active" json:"active"`         // Account enabled flag
	CreatedAt time.Time `bson:"created_at" json:"created_at"` // Account creation timestamp
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
