package message_service

import (
	"encoding/json"

	common_model "github.com/Altaway/wabridge-server/src/common/model"
	"github.com/Altaway/wabridge-server/src/database"
	message_entity "github.com/Altaway/wabridge-server/src/message/entity"
	"github.com/Altaway/wabridge-server/src/repository"
	"gorm.io/gorm"
)

// GetWamID fetches messages whose Cloud API message id equals wamID,
// matching either traffic direction.
func GetWamID(
	wamID string,
	entity message_entity.Message,
	pagination *common_model.Paginate,
	order common_model.Orderable,
	whereable common_model.Whereable,
	db *gorm.DB,
) ([]message_entity.Message, error) {
	if db == nil {
		db = database.DB.Model(&entity)
	}

	// Outbound sends echo the Cloud API id in product_data.messages[].id.
	// Probe with root-level containment so the jsonb_path_ops GIN index on
	// product_data can serve it.
	needle, err := json.Marshal(map[string]any{
		"messages": []map[string]string{{"id": wamID}},
	})
	if err != nil {
		return nil, err
	}

	db = db.
		Joins("From").
		Joins("To").
		Where(
			// Inbound traffic carries the id at receiver_data.message.id.
			"receiver_data->'message'->>'id' = ? OR product_data @> ?::jsonb",
			wamID,
			string(needle),
		)

	// Apply pagination, ordering, and additional where conditions
	messages, err := repository.GetPaginated(
		entity,
		pagination,
		order,
		whereable,
		"messages",
		db,
	)
	return messages, err
}
