package jwthelper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	key := []byte("test-signing-key")

	token, err := GenerateToken(key, "singer@example.com", []string{"create-event"}, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(key, token)
	require.NoError(t, err)
	assert.Equal(t, "singer@example.com", claims.Email)
	assert.Equal(t, []string{"create-event"}, claims.Permissions)
}

func TestParseToken_Rejects(t *testing.T) {
	key := []byte("test-signing-key")

	t.Run("wrong key", func(t *testing.T) {
		token, err := GenerateToken([]byte("other-key"), "singer@example.com", nil, time.Hour)
		require.NoError(t, err)

		_, err = ParseToken(key, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := GenerateToken(key, "singer@example.com", nil, -time.Minute)
		require.NoError(t, err)

		_, err = ParseToken(key, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseToken(key, "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
