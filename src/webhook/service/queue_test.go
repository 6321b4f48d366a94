package webhook_service

import (
	"testing"
	"time"

	webhook_entity "github.com/Altaway/wabridge-server/src/webhook/entity"
	"github.com/stretchr/testify/assert"
)

func TestNextBackoffDelay(t *testing.T) {
	t.Run("DefaultsToOneSecondBase", func(t *testing.T) {
		assert.Equal(t, time.Second, NextBackoffDelay(nil, 1))
		assert.Equal(t, 2*time.Second, NextBackoffDelay(nil, 2))
	})

	t.Run("DoublesPerAttempt", func(t *testing.T) {
		webhook := &webhook_entity.Webhook{RetryDelayMs: 500}

		assert.Equal(t, 500*time.Millisecond, NextBackoffDelay(webhook, 1))
		assert.Equal(t, time.Second, NextBackoffDelay(webhook, 2))
		assert.Equal(t, 2*time.Second, NextBackoffDelay(webhook, 3))
		assert.Equal(t, 4*time.Second, NextBackoffDelay(webhook, 4))
	})

	t.Run("TreatsZeroAttemptAsFirst", func(t *testing.T) {
		assert.Equal(t, time.Second, NextBackoffDelay(nil, 0))
	})

	t.Run("CapsAtOneHour", func(t *testing.T) {
		webhook := &webhook_entity.Webhook{RetryDelayMs: 60_000}

		assert.Equal(t, time.Hour, NextBackoffDelay(webhook, 12))
		// Shift counts past the bit width must not wrap into tiny delays.
		assert.Equal(t, time.Hour, NextBackoffDelay(webhook, 80))
	})
}
