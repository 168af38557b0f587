package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profeed/models"
)

func TestUserRepositoryCreateAndFind(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := &models.User{Username: "alice", Password: "hash1"}
	require.NoError(t, repo.Create(ctx, user))

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)
	assert.Equal(t, "hash1", found.Password)
	assert.Empty(t, found.Bio)
}

func TestUserRepositoryCreateDuplicate(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Username: "alice", Password: "hash1"}))

	err := repo.Create(ctx, &models.User{Username: "alice", Password: "hash2"})
	assert.ErrorIs(t, err, ErrConflict)

	// The original password hash is untouched
	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "hash1", found.Password)
}

func TestUserRepositoryUsernamesAreCaseSensitive(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Username: "alice", Password: "hash1"}))
	require.NoError(t, repo.Create(ctx, &models.User{Username: "Alice", Password: "hash2"}))

	found, err := repo.FindByUsername(ctx, "Alice")
	require.NoError(t, err)
	assert.Equal(t, "hash2", found.Password)
}

func TestUserRepositoryFindAbsent(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.FindByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepositoryUpdateBio(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Username: "alice", Password: "hash1"}))
	require.NoError(t, repo.UpdateBio(ctx, "alice", "hello there"))

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "hello there", found.Bio)

	// Clearing the bio is a legal update
	require.NoError(t, repo.UpdateBio(ctx, "alice", ""))
	found, err = repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, found.Bio)
}

func TestUserRepositoryUpdateBioAbsent(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	err := repo.UpdateBio(context.Background(), "nobody", "bio")
	assert.ErrorIs(t, err, ErrNotFound)
}
