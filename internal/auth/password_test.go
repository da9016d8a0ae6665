package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("mysecretpassword")
	require.NoError(t, err)
	assert.NotEqual(t, "mysecretpassword", digest)

	assert.True(t, VerifyPassword("mysecretpassword", digest))
	assert.False(t, VerifyPassword("wrongpassword", digest))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	d1, err := HashPassword("password123")
	require.NoError(t, err)
	d2, err := HashPassword("password123")
	require.NoError(t, err)

	assert.NotEqual(t, d1, d2)
	assert.True(t, VerifyPassword("password123", d1))
	assert.True(t, VerifyPassword("password123", d2))
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	t.Parallel()

	assert.False(t, VerifyPassword("whatever", "not-a-bcrypt-digest"))
	assert.False(t, VerifyPassword("whatever", ""))
}
