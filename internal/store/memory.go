package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Gabohhh/Casinomongo2/internal/domain"
)

// MemoryStore is a threadsafe in-memory implementation useful for tests.
// NOT suitable for production without persistence.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]*domain.User // key = user id
	txs   []domain.Transaction
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]*domain.User)}
}

// GetUserByEmail implements Store.
func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrUserNotFound
}

// GetUserByID implements Store.
func (s *MemoryStore) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

// ListUsers implements Store.
func (s *MemoryStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })
	return users, nil
}

// CountUsers implements Store.
func (s *MemoryStore) CountUsers(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.users)), nil
}

// CreateUser implements Store, enforcing email uniqueness.
func (s *MemoryStore) CreateUser(ctx context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return ErrEmailExists
		}
	}
	if u.ID == "" {
		u.ID = primitive.NewObjectID().Hex()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	copied := *u
	s.users[u.ID] = &copied
	return nil
}

// UpdateUser implements Store.
func (s *MemoryStore) UpdateUser(ctx context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.users[u.ID]
	if !ok {
		return ErrUserNotFound
	}
	for id, other := range s.users {
		if id != u.ID && other.Email == u.Email {
			return ErrEmailExists
		}
	}
	existing.Email = u.Email
	existing.Password = u.Password
	existing.Role = u.Role
	existing.Balance = u.Balance
	existing.Active = u.Active
	return nil
}

// DeleteUser implements Store. Transactions referencing the user remain.
func (s *MemoryStore) DeleteUser(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

// UserTransactions implements Store, date descending.
func (s *MemoryStore) UserTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	if _, err := primitive.ObjectIDFromHex(userID); err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", userID, err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var txs []domain.Transaction
	for _, tx := range s.txs {
		if tx.UserID == userID {
			txs = append(txs, tx)
		}
	}
	sort.Slice(txs, func(i, j int) bool { return txs[i].Date.After(txs[j].Date) })
	return txs, nil
}

// InsertTransactions implements Store.
func (s *MemoryStore) InsertTransactions(ctx context.Context, txs []domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = append(s.txs, txs...)
	return nil
}
