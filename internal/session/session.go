package session

import (
	"context"
	"errors"
	"time"
)

// TTL is how long a session survives without a logout.
const TTL = 24 * time.Hour

// Flash is a one-shot message displayed on the next rendered page.
type Flash struct {
	Message string `json:"message"`
	Level   string `json:"level"` // e.g. success, danger
}

// Data is the server-side session payload. It caches only the user's
// identity and role; handlers re-fetch the full user record when they need
// current data.
type Data struct {
	UserID  string  `json:"user_id"`
	Email   string  `json:"email"`
	Role    string  `json:"role"`
	Flashes []Flash `json:"flashes,omitempty"`
}

// Store defines operations for session persistence. Sessions live server-side
// and are addressed by an opaque token carried in a cookie.
type Store interface {
	// Create stores the payload under a fresh random token and returns it.
	Create(ctx context.Context, data Data) (string, error)

	// Get returns the payload for a token, or (nil, ErrNotFound) when the
	// token is unknown or expired.
	Get(ctx context.Context, token string) (*Data, error)

	// Delete unconditionally removes the session.
	Delete(ctx context.Context, token string) error

	// AddFlash appends a flash message to the session.
	AddFlash(ctx context.Context, token string, f Flash) error

	// PopFlashes returns the pending flash messages and clears them.
	PopFlashes(ctx context.Context, token string) ([]Flash, error)
}

// ErrNotFound is returned for unknown or expired session tokens.
var ErrNotFound = errors.New("session not found")
