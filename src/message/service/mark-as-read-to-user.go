package message_service

import (
	"errors"

	common_model "github.com/Altaway/wabridge-server/src/common/model"
	"github.com/Altaway/wabridge-server/src/database"
	"github.com/Altaway/wabridge-server/src/integration/whatsapp"
	message_entity "github.com/Altaway/wabridge-server/src/message/entity"
	"github.com/Altaway/wabridge-server/src/repository"
	whatsapp_message_model "github.com/Altaway/wabridge-server/src/whatsapp/message/model"
	"gorm.io/gorm"
)

// MarkWhatsAppMessageAsReadToUser marks the first message matched by the
// filters as read on the user's device. The message must be inbound, since
// only wam ids delivered by the webhook can be acknowledged.
func MarkWhatsAppMessageAsReadToUser(
	entity message_entity.Message,
	pagination *common_model.Paginate,
	order common_model.Orderable,
	whereable common_model.Whereable,
	prefix string,
	db *gorm.DB,
) (whatsapp_message_model.StatusResponse, error) {
	if db == nil {
		db = database.DB.Model(&entity)
	}

	messages, err := repository.GetPaginated(entity, pagination, order, whereable, prefix, db)
	if err != nil {
		return whatsapp_message_model.StatusResponse{Success: false}, err
	}

	if len(messages) == 0 {
		return whatsapp_message_model.StatusResponse{Success: false}, errors.New("message not found")
	}

	msg := messages[0]
	if msg.ReceiverData == nil || msg.ReceiverData.Message == nil {
		return whatsapp_message_model.StatusResponse{Success: false}, errors.New("receiver data not found for latest message")
	}

	return whatsapp.WabaApi.MarkAsRead(msg.ReceiverData.Message.ID)
}
