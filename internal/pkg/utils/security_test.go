package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.False(t, CheckPasswordHash("secret123", "not-a-hash"))
}

func TestSessionJWTRoundtrip(t *testing.T) {
	token, err := GenerateSessionJWT("session-abc", "test-secret", 24)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sessionID, err := ParseSessionJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "session-abc", sessionID)
}

func TestSessionJWTRejectsTampering(t *testing.T) {
	token, err := GenerateSessionJWT("session-abc", "test-secret", 24)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := ParseSessionJWT(token, "other-secret")
		require.Error(t, err)
	})

	t.Run("mangled token", func(t *testing.T) {
		_, err := ParseSessionJWT(token+"x", "test-secret")
		require.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := GenerateSessionJWT("session-abc", "test-secret", -1)
		require.NoError(t, err)

		_, err = ParseSessionJWT(expired, "test-secret")
		require.Error(t, err)
	})
}
