package user_entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeforeSave(t *testing.T) {
	t.Run("HashesPlaintextPassword", func(t *testing.T) {
		user := User{Email: "jane@example.com", Password: "plain-password"}

		require.NoError(t, user.BeforeSave(nil))
		assert.NotEqual(t, "plain-password", user.Password)
		assert.NoError(t, user.ComparePassword("plain-password"))
	})

	t.Run("LeavesExistingHashAlone", func(t *testing.T) {
		user := User{Email: "jane@example.com", Password: "plain-password"}
		require.NoError(t, user.BeforeSave(nil))
		hashed := user.Password

		// A second save cycle must not hash the hash, that would lock the
		// user out.
		require.NoError(t, user.BeforeSave(nil))
		assert.Equal(t, hashed, user.Password)
		assert.NoError(t, user.ComparePassword("plain-password"))
	})

	t.Run("IgnoresEmptyPassword", func(t *testing.T) {
		user := User{Email: "jane@example.com"}

		require.NoError(t, user.BeforeSave(nil))
		assert.Empty(t, user.Password)
	})
}

func TestComparePassword(t *testing.T) {
	user := User{Password: "plain-password"}
	require.NoError(t, user.BeforeSave(nil))

	assert.NoError(t, user.ComparePassword("plain-password"))
	assert.Error(t, user.ComparePassword("wrong-password"))
	assert.Error(t, user.ComparePassword(""))
}
