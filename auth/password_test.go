package auth_test

import (
	"testing"

	"github.com/Bowya123/swiggybackend/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("pw123")
	require.NoError(t, err)

	assert.NotEqual(t, "pw123", hash)
	assert.True(t, auth.CheckPassword(hash, "pw123"))
	assert.False(t, auth.CheckPassword(hash, "wrong"))
	assert.False(t, auth.CheckPassword(hash, ""))
}

func TestHashPasswordSalts(t *testing.T) {
	h1, err := auth.HashPassword("pw123")
	require.NoError(t, err)
	h2, err := auth.HashPassword("pw123")
	require.NoError(t, err)

	// Per-hash salts: identical passwords never share a hash.
	assert.NotEqual(t, h1, h2)
	assert.True(t, auth.CheckPassword(h1, "pw123"))
	assert.True(t, auth.CheckPassword(h2, "pw123"))
}
