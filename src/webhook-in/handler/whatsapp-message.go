package webhook_handler

import (
	"fmt"
	"sync"

	contact_entity "github.com/Altaway/wabridge-server/src/contact/entity"
	contact_service "github.com/Altaway/wabridge-server/src/contact/service"
	"github.com/Altaway/wabridge-server/src/database"
	message_entity "github.com/Altaway/wabridge-server/src/message/entity"
	message_handler "github.com/Altaway/wabridge-server/src/message/handler"
	message_model "github.com/Altaway/wabridge-server/src/message/model"
	webhook_entity "github.com/Altaway/wabridge-server/src/webhook/entity"
	webhook_out_model "github.com/Altaway/wabridge-server/src/webhook/model"
	webhook_service "github.com/Altaway/wabridge-server/src/webhook/service"
	whatsapp_webhook_model "github.com/Altaway/wabridge-server/src/whatsapp/webhook/model"
	"github.com/gofiber/fiber/v2"
	"github.com/pterm/pterm"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// MessageCallback persists the inbound messages of one webhook change and,
// once the transaction commits, notifies websocket subscribers and outbound
// webhooks asynchronously.
func MessageCallback(ctx *fiber.Ctx, value *whatsapp_webhook_model.Value) error {
	if value.Messages == nil {
		return nil
	}

	tx := database.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	msgs, err := handleMessages(value, tx)
	if err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	go func() {
		for _, msg := range msgs {
			go message_handler.NewMessageChannel.BroadcastJsonMultithread(msg)
			go webhook_service.SendAllByQuery(
				webhook_entity.Webhook{
					Event: webhook_out_model.ReceiveWhatsAppMessage,
				},
				msg,
			)
		}
	}()

	return nil
}

// Returns the created messages. Messages from blocked contacts are dropped
// without failing the batch.
func handleMessages(value *whatsapp_webhook_model.Value, tx *gorm.DB) ([]message_entity.Message, error) {
	var eg errgroup.Group

	msgs := []message_entity.Message{}
	var msgsMu sync.Mutex

	// Handling each message
	for index, message := range *value.Messages {
		eg.Go(func() error {
			// The contacts array runs parallel to the messages array.
			var name string
			if value.Contacts != nil && len(*value.Contacts) > index {
				name = (*value.Contacts)[index].Profile.Name
			}

			contact, err := contact_service.GetOrSave(
				contact_entity.Contact{
					WaID:        message.From,
					PhoneNumber: message.From,
				},
				name,
				tx,
			)
			if err != nil {
				return err
			}
			if contact.Blocked {
				return nil
			}

			// Building the message entity and creating it with the contact found
			msg := message_entity.Message{
				MessageFields: message_model.MessageFields{
					FromID: &contact.ID,
				},
				From:         &contact,
				ReceiverData: &message_model.ReceiverData{Message: &message},
			}
			if err := tx.Model(&msg).Create(&msg).Error; err != nil {
				return err
			}
			msgsMu.Lock()
			msgs = append(msgs, msg)
			msgsMu.Unlock()
			return nil
		})
	}

	err := eg.Wait()
	if err != nil {
		pterm.DefaultLogger.Error(
			fmt.Sprintf("Error while handling inbound messages: %s", err.Error()),
		)
	}

	return msgs, err
}
