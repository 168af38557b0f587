package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("secret123")
	require.NoError(t, err)
	second, err := HashPassword("secret123")
	require.NoError(t, err)

	// Same plaintext, different salts
	assert.NotEqual(t, first, second)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NoError(t, CheckPassword("secret123", hash))
	assert.Error(t, CheckPassword("wrong", hash))
	assert.Error(t, CheckPassword("", hash))
}
