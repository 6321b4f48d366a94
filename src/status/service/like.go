package status_service

import (
	common_model "github.com/Altaway/wabridge-server/src/common/model"
	"github.com/Altaway/wabridge-server/src/database"
	"github.com/Altaway/wabridge-server/src/repository"
	status_entity "github.com/Altaway/wabridge-server/src/status/entity"
	"gorm.io/gorm"
)

// ContentLike queries statuses whose raw webhook payload matches likeText.
// Statuses are low-volume compared to messages, so a plain ILIKE scan is
// enough here.
func ContentLike(
	likeText string,
	entity status_entity.Status,
	pagination *common_model.Paginate,
	order common_model.Orderable,
	whereable common_model.Whereable,
	db *gorm.DB,
) ([]status_entity.Status, error) {
	if db == nil {
		db = database.DB.Model(&entity)
	}

	db = db.
		Joins("Message").
		Where("COALESCE(product_data::text, '') ILIKE ?", likeText)

	return repository.GetPaginated(entity, pagination, order, whereable, "statuses", db)
}
