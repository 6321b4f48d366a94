package status_service

import (
	common_model "github.com/Altaway/wabridge-server/src/common/model"
	"github.com/Altaway/wabridge-server/src/database"
	"github.com/Altaway/wabridge-server/src/repository"
	status_entity "github.com/Altaway/wabridge-server/src/status/entity"
	"gorm.io/gorm"
)

// GetWamID fetches statuses reported for the given Cloud API message id.
func GetWamID(
	wamID string,
	entity status_entity.Status,
	pagination *common_model.Paginate,
	order common_model.Orderable,
	whereable common_model.Whereable,
	db *gorm.DB,
) ([]status_entity.Status, error) {
	if db == nil {
		db = database.DB.Model(&entity)
	}

	entity.WamID = wamID
	db = db.Joins("Message")

	return repository.GetPaginated(
		entity,
		pagination,
		order,
		whereable,
		"statuses",
		db,
	)
}
