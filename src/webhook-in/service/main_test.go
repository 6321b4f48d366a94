package webhook_service

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	whatsapp_webhook_model "github.com/Altaway/wabridge-server/src/whatsapp/webhook/model"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func messageBody(messages ...whatsapp_webhook_model.Message) *whatsapp_webhook_model.Body {
	return &whatsapp_webhook_model.Body{
		Object: whatsapp_webhook_model.Object,
		Entry: []whatsapp_webhook_model.Entry{{
			ID: "102290129340398",
			Changes: []whatsapp_webhook_model.Change{{
				Field: whatsapp_webhook_model.MessagesField,
				Value: whatsapp_webhook_model.Value{
					MessagingProduct: "whatsapp",
					Messages:         &messages,
				},
			}},
		}},
	}
}

func TestRegistryDispatch(t *testing.T) {
	t.Run("IgnoresForeignObjects", func(t *testing.T) {
		registry := NewRegistry()

		var calls atomic.Int32
		registry.On(MessageEvent, func(c *fiber.Ctx, value *whatsapp_webhook_model.Value) error {
			calls.Add(1)
			return nil
		})

		body := messageBody(whatsapp_webhook_model.Message{ID: "wamid.A"})
		body.Object = "page"

		handled, err := registry.Dispatch(nil, body)
		require.NoError(t, err)
		assert.False(t, handled)
		assert.Zero(t, calls.Load())
	})

	t.Run("IgnoresNilBody", func(t *testing.T) {
		registry := NewRegistry()

		handled, err := registry.Dispatch(nil, nil)
		require.NoError(t, err)
		assert.False(t, handled)
	})

	t.Run("FansOutToEverySubscriber", func(t *testing.T) {
		registry := NewRegistry()

		var messageCalls, statusCalls atomic.Int32
		registry.On(MessageEvent,
			func(c *fiber.Ctx, value *whatsapp_webhook_model.Value) error {
				messageCalls.Add(1)
				return nil
			},
			func(c *fiber.Ctx, value *whatsapp_webhook_model.Value) error {
				messageCalls.Add(1)
				return nil
			},
		)
		registry.On(StatusEvent, func(c *fiber.Ctx, value *whatsapp_webhook_model.Value) error {
			statusCalls.Add(1)
			return nil
		})

		handled, err := registry.Dispatch(nil, messageBody(whatsapp_webhook_model.Message{ID: "wamid.A"}))
		require.NoError(t, err)
		assert.True(t, handled)
		assert.Equal(t, int32(2), messageCalls.Load())
		assert.Zero(t, statusCalls.Load(), "status handlers must not fire for message changes")
	})

	t.Run("SharesOneValueAcrossSubscribers", func(t *testing.T) {
		registry := NewRegistry()

		var mu sync.Mutex
		var seen []*whatsapp_webhook_model.Value
		record := func(c *fiber.Ctx, value *whatsapp_webhook_model.Value) error {
			mu.Lock()
			defer mu.Unlock()
			seen = append(seen, value)
			return nil
		}
		registry.On(MessageEvent, record, record)

		body := messageBody(whatsapp_webhook_model.Message{ID: "wamid.A"})
		handled, err := registry.Dispatch(nil, body)
		require.NoError(t, err)
		require.True(t, handled)

		require.Len(t, seen, 2)
		assert.Same(t, seen[0], seen[1])
		assert.Same(t, &body.Entry[0].Changes[0].Value, seen[0])
	})

	t.Run("ReturnsHandlerError", func(t *testing.T) {
		registry := NewRegistry()

		sentinel := errors.New("persistence down")
		registry.On(MessageEvent,
			func(c *fiber.Ctx, value *whatsapp_webhook_model.Value) error { return nil },
			func(c *fiber.Ctx, value *whatsapp_webhook_model.Value) error { return sentinel },
		)

		handled, err := registry.Dispatch(nil, messageBody(whatsapp_webhook_model.Message{ID: "wamid.A"}))
		assert.True(t, handled)
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("SkipsChangesOfOtherFields", func(t *testing.T) {
		registry := NewRegistry()

		var calls atomic.Int32
		registry.On(MessageEvent, func(c *fiber.Ctx, value *whatsapp_webhook_model.Value) error {
			calls.Add(1)
			return nil
		})

		body := messageBody(whatsapp_webhook_model.Message{ID: "wamid.A"})
		body.Entry[0].Changes[0].Field = "account_update"

		handled, err := registry.Dispatch(nil, body)
		require.NoError(t, err)
		assert.True(t, handled, "the payload still belongs to a business account")
		assert.Zero(t, calls.Load())
	})

	t.Run("DispatchesStatusesToStatusSubscribers", func(t *testing.T) {
		registry := NewRegistry()

		var messageCalls, statusCalls atomic.Int32
		registry.On(MessageEvent, func(c *fiber.Ctx, value *whatsapp_webhook_model.Value) error {
			messageCalls.Add(1)
			return nil
		})
		registry.On(StatusEvent, func(c *fiber.Ctx, value *whatsapp_webhook_model.Value) error {
			statusCalls.Add(1)
			return nil
		})

		statuses := []whatsapp_webhook_model.Status{{
			ID:     "wamid.A",
			Status: whatsapp_webhook_model.StatusDelivered,
		}}
		body := &whatsapp_webhook_model.Body{
			Object: whatsapp_webhook_model.Object,
			Entry: []whatsapp_webhook_model.Entry{{
				Changes: []whatsapp_webhook_model.Change{{
					Field: whatsapp_webhook_model.MessagesField,
					Value: whatsapp_webhook_model.Value{Statuses: &statuses},
				}},
			}},
		}

		handled, err := registry.Dispatch(nil, body)
		require.NoError(t, err)
		assert.True(t, handled)
		assert.Equal(t, int32(1), statusCalls.Load())
		assert.Zero(t, messageCalls.Load())
	})

	t.Run("WalksEveryEntryAndChange", func(t *testing.T) {
		registry := NewRegistry()

		var calls atomic.Int32
		registry.On(MessageEvent, func(c *fiber.Ctx, value *whatsapp_webhook_model.Value) error {
			calls.Add(1)
			return nil
		})

		first := []whatsapp_webhook_model.Message{{ID: "wamid.A"}}
		second := []whatsapp_webhook_model.Message{{ID: "wamid.B"}}
		body := &whatsapp_webhook_model.Body{
			Object: whatsapp_webhook_model.Object,
			Entry: []whatsapp_webhook_model.Entry{
				{Changes: []whatsapp_webhook_model.Change{{
					Field: whatsapp_webhook_model.MessagesField,
					Value: whatsapp_webhook_model.Value{Messages: &first},
				}}},
				{Changes: []whatsapp_webhook_model.Change{{
					Field: whatsapp_webhook_model.MessagesField,
					Value: whatsapp_webhook_model.Value{Messages: &second},
				}}},
			},
		}

		handled, err := registry.Dispatch(nil, body)
		require.NoError(t, err)
		assert.True(t, handled)
		assert.Equal(t, int32(2), calls.Load())
	})
}
