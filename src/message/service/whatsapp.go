package message_service

import (
	"errors"

	common_model "github.com/Altaway/wabridge-server/src/common/model"
	contact_entity "github.com/Altaway/wabridge-server/src/contact/entity"
	"github.com/Altaway/wabridge-server/src/database"
	"github.com/Altaway/wabridge-server/src/integration/whatsapp"
	message_entity "github.com/Altaway/wabridge-server/src/message/entity"
	message_model "github.com/Altaway/wabridge-server/src/message/model"
	"gorm.io/gorm"
)

// SendWhatsAppMessage delivers body to its contact through the Cloud API
// and persists the resulting message. The stored row carries the request
// body as sender_data and Meta's acceptance response as product_data.
func SendWhatsAppMessage(
	body message_model.SendWhatsAppMessage,
	tx *gorm.DB,
) (message_entity.Message, error) {
	var message message_entity.Message
	body.SenderData.SetDefault()
	message.ToID = &body.ToID

	if tx == nil {
		tx = database.DB
	}

	// Adding contact to message
	contact := contact_entity.Contact{Audit: common_model.Audit{ID: body.ToID}}
	if err := tx.Model(&contact).Where(&contact).First(&contact).Error; err != nil {
		return message, err
	}
	if contact.Blocked {
		return message, errors.New("contact is blocked")
	}
	message.To = &contact

	// Building message content
	body.SenderData.To = contact.PhoneNumber
	if body.SenderData.To == "" {
		body.SenderData.To = contact.WaID
	}
	message.SenderData = &message_model.SenderData{
		Message: &body.SenderData,
	}

	// Sending message
	response, err := whatsapp.WabaApi.Send(body.SenderData)
	if err != nil {
		return message, err
	}

	message.ProductData = &message_model.ProductData{
		SendResponse: &response,
	}
	if len(message.ProductData.Messages) == 0 {
		return message, errors.New("no message id returned by Meta")
	}

	// Creating message at database
	if err := tx.Create(&message).Error; err != nil {
		return message, err
	}

	return message, nil
}
