package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/JoseAngelVirgenEslava/proyecto/internal/models"
	"github.com/JoseAngelVirgenEslava/proyecto/internal/repository"
	"github.com/JoseAngelVirgenEslava/proyecto/internal/session"
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidEmail       = errors.New("email is not valid")
	ErrWrongPassword      = errors.New("wrong password")
)

// expectedUsers sizes the registered-email bloom filter.
const expectedUsers = 100000

// AuthService handles account registration and login. It is an outer
// collaborator of the storefront core: feed and checkout never consult it.
type AuthService struct {
	users    repository.UserRepository
	sessions *session.Store

	// seen is a fast negative check for already-registered emails; a miss
	// skips the repository lookup on registration. The repository stays
	// authoritative for duplicates.
	mu   sync.Mutex
	seen *bloom.BloomFilter
}

// NewAuthService creates a new auth service
func NewAuthService(users repository.UserRepository, sessions *session.Store) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		seen:     bloom.NewWithEstimates(expectedUsers, 0.01),
	}
}

// Register creates a new account with a bcrypt-hashed password.
// Fails with repository.ErrUserExists when the email is taken.
func (s *AuthService) Register(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	s.mu.Lock()
	maybeSeen := s.seen.TestString(email)
	s.mu.Unlock()

	if maybeSeen {
		if _, err := s.users.GetByEmail(ctx, email); err == nil {
			return nil, repository.ErrUserExists
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.seen.AddString(email)
	s.mu.Unlock()

	return user, nil
}

// Login verifies the credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, ErrMissingCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrWrongPassword
	}

	token := s.sessions.Issue(session.Identity{
		UserID: user.ID,
		Email:  user.Email,
	})
	return token, user, nil
}
