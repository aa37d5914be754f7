package store

import (
	"context"
	"errors"

	"github.com/Gabohhh/Casinomongo2/internal/domain"
)

// Store defines operations for user and transaction persistence. The panel
// runs against the MongoDB implementation; the in-memory implementation keeps
// handler tests hermetic.
type Store interface {
	// GetUserByEmail returns a user by email. If the user is not found,
	// (nil, ErrUserNotFound) is returned.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetUserByID returns a user by id. If the user is not found,
	// (nil, ErrUserNotFound) is returned.
	GetUserByID(ctx context.Context, id string) (*domain.User, error)

	// ListUsers returns every user, unfiltered and unpaginated.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CountUsers returns the total number of user documents.
	CountUsers(ctx context.Context) (int64, error)

	// CreateUser inserts a new user. Caller is expected to pass a
	// bcrypt-hashed password. Implementations must enforce unique emails
	// and return ErrEmailExists on conflict.
	CreateUser(ctx context.Context, u *domain.User) error

	// UpdateUser overwrites the admin-editable fields (email, password,
	// role, balance, active) of an existing user.
	UpdateUser(ctx context.Context, u *domain.User) error

	// DeleteUser removes exactly one user document. Transactions
	// referencing the user are left untouched.
	DeleteUser(ctx context.Context, id string) error

	// UserTransactions returns the user's transactions sorted by date
	// descending.
	UserTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)

	// InsertTransactions bulk-inserts transaction records.
	InsertTransactions(ctx context.Context, txs []domain.Transaction) error
}

// Domain-level errors returned by the store.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already exists")
)
