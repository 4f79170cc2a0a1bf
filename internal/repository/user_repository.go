package repository

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/JoseAngelVirgenEslava/proyecto/internal/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

// UserRepository defines the interface for account data access.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Create stores a new user. Fails with ErrUserExists when the email is
	// already registered.
	Create(ctx context.Context, user models.User) (*models.User, error)
}

// InMemoryUserRepository implements UserRepository with in-memory storage.
// Emails are compared case-insensitively.
type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// NewInMemoryUserRepository creates an empty in-memory user repository.
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{users: make(map[string]models.User)}
}

func userKey(email string) string {
	return strings.ToLower(email)
}

// GetByEmail returns the user registered under email.
func (r *InMemoryUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, exists := r.users[userKey(email)]
	if !exists {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// Create stores a new user.
func (r *InMemoryUserRepository) Create(ctx context.Context, user models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := userKey(user.Email)
	if _, exists := r.users[key]; exists {
		return nil, ErrUserExists
	}
	r.users[key] = user
	return &user, nil
}
