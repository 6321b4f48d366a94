package websocket_model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientPool(t *testing.T) {
	pool := CreateClientPool()
	userID := uuid.New()

	first := pool.CreateID(userID)
	second := pool.CreateID(userID)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.NotEqual(t, *first, *second, "two connections of one user need distinct ids")
	assert.Equal(t, 2, pool.Active())

	pool.DeleteID(*first)
	assert.Equal(t, 1, pool.Active())

	// Deleting twice is harmless.
	pool.DeleteID(*first)
	assert.Equal(t, 1, pool.Active())
}

func TestClientIDString(t *testing.T) {
	userID := uuid.New()
	id := ClientID{UserID: userID, Seq: 7}

	assert.Equal(t, userID.String()+":7", id.String())
}

func TestChannelRegistration(t *testing.T) {
	channel := CreateChannel[ClientID, string, string]()
	assert.Zero(t, channel.Count())

	key := ClientID{UserID: uuid.New(), Seq: 1}.String()
	channel.AppendClient(Client[ClientID]{}, key)
	assert.Equal(t, 1, channel.Count())

	// Re-registering under the same key replaces the previous connection.
	channel.AppendClient(Client[ClientID]{}, key)
	assert.Equal(t, 1, channel.Count())

	channel.RemoveClient(key)
	assert.Zero(t, channel.Count())
}
