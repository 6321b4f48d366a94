package message_service

import (
	common_model "github.com/Altaway/wabridge-server/src/common/model"
	"github.com/Altaway/wabridge-server/src/database"
	message_entity "github.com/Altaway/wabridge-server/src/message/entity"
	"github.com/Altaway/wabridge-server/src/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetConversation lists the messages exchanged with one contact in either
// direction.
func GetConversation(
	contactID uuid.UUID,
	entity message_entity.Message,
	pagination *common_model.Paginate,
	order common_model.Orderable,
	whereable common_model.Whereable,
	db *gorm.DB,
) ([]message_entity.Message, error) {
	if db == nil {
		db = database.DB.Model(&entity)
	}

	db = db.
		Joins("From").
		Joins("To").
		Where("messages.from_id = ? OR messages.to_id = ?", contactID, contactID)

	return repository.GetPaginated(entity, pagination, order, whereable, "messages", db)
}
