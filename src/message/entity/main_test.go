package message_entity

import (
	"testing"

	message_model "github.com/Altaway/wabridge-server/src/message/model"
	whatsapp_message_model "github.com/Altaway/wabridge-server/src/whatsapp/message/model"
	whatsapp_webhook_model "github.com/Altaway/wabridge-server/src/whatsapp/webhook/model"
	"github.com/stretchr/testify/assert"
)

func TestMessageWamID(t *testing.T) {
	t.Run("OutboundUsesSendResponse", func(t *testing.T) {
		message := Message{
			ProductData: &message_model.ProductData{
				SendResponse: &whatsapp_message_model.SendResponse{
					Messages: []whatsapp_message_model.ResponseMessage{{ID: "wamid.OUT"}},
				},
			},
		}
		assert.Equal(t, "wamid.OUT", message.WamID())
	})

	t.Run("InboundUsesReceiverData", func(t *testing.T) {
		message := Message{
			ReceiverData: &message_model.ReceiverData{
				Message: &whatsapp_webhook_model.Message{ID: "wamid.IN"},
			},
		}
		assert.Equal(t, "wamid.IN", message.WamID())
	})

	t.Run("OutboundIdWinsWhenBothPresent", func(t *testing.T) {
		message := Message{
			ProductData: &message_model.ProductData{
				SendResponse: &whatsapp_message_model.SendResponse{
					Messages: []whatsapp_message_model.ResponseMessage{{ID: "wamid.OUT"}},
				},
			},
			ReceiverData: &message_model.ReceiverData{
				Message: &whatsapp_webhook_model.Message{ID: "wamid.IN"},
			},
		}
		assert.Equal(t, "wamid.OUT", message.WamID())
	})

	t.Run("EmptyWithoutPayloads", func(t *testing.T) {
		var message Message
		assert.Empty(t, message.WamID())
	})

	t.Run("EmptySendResponseFallsThrough", func(t *testing.T) {
		message := Message{
			ProductData: &message_model.ProductData{
				SendResponse: &whatsapp_message_model.SendResponse{},
			},
			ReceiverData: &message_model.ReceiverData{
				Message: &whatsapp_webhook_model.Message{ID: "wamid.IN"},
			},
		}
		assert.Equal(t, "wamid.IN", message.WamID())
	})
}
