package service

import (
	"context"
	"testing"
	"time"

	"github.com/akoval/taskhub/internal/domain"
	"github.com/akoval/taskhub/internal/repository"
	"github.com/akoval/taskhub/internal/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestTokenManager() *security.TokenManager {
	return security.NewTokenManager("test-secret-key-with-32-chars!!!", 20*time.Minute)
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	input := domain.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	}

	t.Run("success", func(t *testing.T) {
		users := new(MockUserRepository)
		svc := NewAuthService(users, newTestTokenManager())

		users.On("FindByUsernameOrEmail", ctx, "alice", "alice@example.com").Return(nil, nil)
		users.On("Create", ctx, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
			user := args.Get(1).(*domain.User)
			assert.Equal(t, "alice", user.Username)
			assert.Equal(t, "alice@example.com", user.Email)
			assert.True(t, user.IsActive)
			assert.NotEqual(t, "secret123", user.PasswordHash)
			assert.True(t, security.VerifyPassword("secret123", user.PasswordHash))
			user.ID = 1
		}).Return(nil)

		err := svc.Signup(ctx, input)
		require.NoError(t, err)

		users.AssertExpectations(t)
	})

	t.Run("duplicate caught by pre-check", func(t *testing.T) {
		users := new(MockUserRepository)
		svc := NewAuthService(users, newTestTokenManager())

		users.On("FindByUsernameOrEmail", ctx, "alice", "alice@example.com").
			Return(&domain.User{ID: 7, Username: "alice"}, nil)

		err := svc.Signup(ctx, input)
		assert.ErrorIs(t, err, ErrDuplicateIdentity)

		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate caught by insert constraint", func(t *testing.T) {
		// Simulates the race where a concurrent signup slipped between
		// the pre-check and the insert.
		users := new(MockUserRepository)
		svc := NewAuthService(users, newTestTokenManager())

		users.On("FindByUsernameOrEmail", ctx, "alice", "alice@example.com").Return(nil, nil)
		users.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(repository.ErrDuplicate)

		err := svc.Signup(ctx, input)
		assert.ErrorIs(t, err, ErrDuplicateIdentity)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := security.HashPassword("secret123")
	require.NoError(t, err)

	stored := &domain.User{
		ID:           42,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
		IsActive:     true,
	}

	t.Run("success issues a valid token", func(t *testing.T) {
		users := new(MockUserRepository)
		tm := newTestTokenManager()
		svc := NewAuthService(users, tm)

		users.On("FindByUsername", ctx, "alice").Return(stored, nil)

		token, err := svc.Login(ctx, "alice", "secret123")
		require.NoError(t, err)
		require.NotNil(t, token)
		assert.Equal(t, "bearer", token.TokenType)

		identity, err := tm.Validate(token.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "alice", identity.Username)
		assert.Equal(t, int64(42), identity.UserID)
	})

	t.Run("unknown user", func(t *testing.T) {
		users := new(MockUserRepository)
		svc := NewAuthService(users, newTestTokenManager())

		users.On("FindByUsername", ctx, "nobody").Return(nil, nil)

		token, err := svc.Login(ctx, "nobody", "secret123")
		assert.Nil(t, token)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		users := new(MockUserRepository)
		svc := NewAuthService(users, newTestTokenManager())

		users.On("FindByUsername", ctx, "alice").Return(stored, nil)

		token, err := svc.Login(ctx, "alice", "not-the-password")
		assert.Nil(t, token)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user and wrong password are indistinguishable", func(t *testing.T) {
		users := new(MockUserRepository)
		svc := NewAuthService(users, newTestTokenManager())

		users.On("FindByUsername", ctx, "nobody").Return(nil, nil)
		users.On("FindByUsername", ctx, "alice").Return(stored, nil)

		_, errUnknown := svc.Login(ctx, "nobody", "secret123")
		_, errWrong := svc.Login(ctx, "alice", "not-the-password")

		assert.Equal(t, errUnknown, errWrong)
	})
}
