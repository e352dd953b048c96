package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/akoval/taskhub/internal/domain"
	"github.com/akoval/taskhub/internal/repository"
	"github.com/akoval/taskhub/internal/security"
)

var (
	// ErrDuplicateIdentity is returned when a signup reuses a username
	// or email. The response never says which field collided.
	ErrDuplicateIdentity = errors.New("email or username already registered")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so a caller cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// AuthService handles signup and login
type AuthService struct {
	users        repository.UserRepository
	tokenManager *security.TokenManager
}

// NewAuthService creates a new auth service
func NewAuthService(users repository.UserRepository, tokenManager *security.TokenManager) *AuthService {
	return &AuthService{
		users:        users,
		tokenManager: tokenManager,
	}
}

// Signup creates a new active user account. No token is issued; the
// user logs in separately.
func (s *AuthService) Signup(ctx context.Context, input domain.CreateUserRequest) error {
	existing, err := s.users.FindByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil {
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return ErrDuplicateIdentity
	}

	hashedPassword, err := security.HashPassword(input.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		IsActive:     true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// Two concurrent signups can both pass the pre-check; the
		// unique constraint settles the race.
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrDuplicateIdentity
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// Login verifies credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Token, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !security.VerifyPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.tokenManager.Issue(user.Username, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &domain.Token{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}
