package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCreateResolve(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	defer store.Close()
	ctx := context.Background()

	token, err := store.Create(ctx, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, ok, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "alice", username)
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	defer store.Close()

	_, ok, err := store.Resolve(context.Background(), "no-such-token")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreDestroy(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	defer store.Close()
	ctx := context.Background()

	token, err := store.Create(ctx, "alice")
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, token))

	_, ok, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok)

	// Destroying again is not an error
	require.NoError(t, store.Destroy(ctx, token))
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)
	defer store.Close()
	ctx := context.Background()

	token, err := store.Create(ctx, "alice")
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)

	_, ok, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreTokensAreUnique(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	defer store.Close()
	ctx := context.Background()

	first, err := store.Create(ctx, "alice")
	require.NoError(t, err)
	second, err := store.Create(ctx, "alice")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
