package sqlite_test

import (
	"context"
	"testing"

	"github.com/akoval/taskhub/internal/domain"
	"github.com/akoval/taskhub/internal/repository"
	"github.com/akoval/taskhub/internal/repository/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(store.Close)
	return store
}

func createUser(t *testing.T, store *sqlite.Store, username, email string) *domain.User {
	t.Helper()

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefakef",
		IsActive:     true,
	}
	require.NoError(t, store.Users().Create(context.Background(), user))
	require.NotZero(t, user.ID)
	return user
}

func TestUserRepository_UniqueConstraints(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	createUser(t, store, "alice", "alice@example.com")

	err := store.Users().Create(ctx, &domain.User{
		Username:     "alice",
		Email:        "other@example.com",
		PasswordHash: "x",
	})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	err = store.Users().Create(ctx, &domain.User{
		Username:     "alice2",
		Email:        "alice@example.com",
		PasswordHash: "x",
	})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestUserRepository_Find(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created := createUser(t, store, "alice", "alice@example.com")

	found, err := store.Users().FindByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
	assert.True(t, found.IsActive)

	missing, err := store.Users().FindByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)

	byEmail, err := store.Users().FindByUsernameOrEmail(ctx, "someone-else", "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, created.ID, byEmail.ID)
}

func TestTaskRepository_OwnerScoping(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := createUser(t, store, "alice", "alice@example.com")
	bob := createUser(t, store, "bob", "bob@example.com")

	task := &domain.Task{
		Title:       "Write report",
		Description: "Quarterly numbers",
		Priority:    3,
		OwnerID:     alice.ID,
	}
	require.NoError(t, store.Tasks().Create(ctx, task))
	require.NotZero(t, task.ID)

	aliceTasks, err := store.Tasks().ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceTasks, 1)

	bobTasks, err := store.Tasks().ListByOwner(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobTasks)

	req := domain.TaskRequest{Title: "Changed", Description: "Changed too", Priority: 5, Complete: true}

	err = store.Tasks().Update(ctx, bob.ID, task.ID, req)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = store.Tasks().Delete(ctx, bob.ID, task.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, store.Tasks().Update(ctx, alice.ID, task.ID, req))

	aliceTasks, err = store.Tasks().ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceTasks, 1)
	assert.Equal(t, "Changed", aliceTasks[0].Title)
	assert.True(t, aliceTasks[0].Complete)

	require.NoError(t, store.Tasks().Delete(ctx, alice.ID, task.ID))

	err = store.Tasks().Delete(ctx, alice.ID, task.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
