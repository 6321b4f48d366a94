package auth_service

import (
	"testing"
	"time"

	"github.com/Altaway/wabridge-server/src/config/env"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	env.JwtSecret = "test-secret"
	env.JwtExpiry = time.Hour

	userID := uuid.New()

	token, err := GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestParseTokenRejectsTampering(t *testing.T) {
	env.JwtSecret = "test-secret"
	env.JwtExpiry = time.Hour

	token, err := GenerateToken(uuid.New())
	require.NoError(t, err)

	t.Run("ModifiedToken", func(t *testing.T) {
		_, err := ParseToken(token + "x")
		assert.Error(t, err)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		env.JwtSecret = "rotated-secret"
		defer func() { env.JwtSecret = "test-secret" }()

		_, err := ParseToken(token)
		assert.Error(t, err)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := ParseToken("not.a.token")
		assert.Error(t, err)
	})
}

func TestParseTokenRejectsExpired(t *testing.T) {
	env.JwtSecret = "test-secret"
	env.JwtExpiry = -time.Minute

	token, err := GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}
