package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/train-ticket-reservation/internal/utils"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := utils.NewSessionToken("secret", "user1", "PASSENGER", "sid-1", 60)
	require.NoError(t, err)

	claims, err := utils.ParseSessionToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "user1", claims.Username)
	assert.Equal(t, "PASSENGER", claims.Role)
	assert.Equal(t, "sid-1", claims.SessionID)
}

func TestParseSessionTokenRejects(t *testing.T) {
	token, err := utils.NewSessionToken("secret", "user1", "PASSENGER", "sid-1", 60)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := utils.ParseSessionToken("other", token)
		assert.ErrorIs(t, err, utils.ErrBadToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := utils.NewSessionToken("secret", "user1", "PASSENGER", "sid-1", -1)
		require.NoError(t, err)
		_, err = utils.ParseSessionToken("secret", expired)
		assert.ErrorIs(t, err, utils.ErrBadToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := utils.ParseSessionToken("secret", "nope")
		assert.ErrorIs(t, err, utils.ErrBadToken)
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := utils.HashPassword("123456", 4)
	require.NoError(t, err)
	assert.True(t, utils.VerifyPassword(hash, "123456"))
	assert.False(t, utils.VerifyPassword(hash, "654321"))
}
