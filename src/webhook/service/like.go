package webhook_service

import (
	common_model "github.com/Altaway/wabridge-server/src/common/model"
	"github.com/Altaway/wabridge-server/src/database"
	"github.com/Altaway/wabridge-server/src/repository"
	webhook_entity "github.com/Altaway/wabridge-server/src/webhook/entity"
	"gorm.io/gorm"
)

// ContentLike lists subscribers whose name, slug or url matches the pattern.
// Subscribers are few, so a plain ILIKE scan is enough here.
func ContentLike(
	likeText string,
	entity webhook_entity.Webhook,
	pagination *common_model.Paginate,
	order common_model.Orderable,
	whereable common_model.Whereable,
	db *gorm.DB,
) ([]webhook_entity.Webhook, error) {
	if db == nil {
		db = database.DB.Model(&entity)
	}

	db = db.Where(
		"name ILIKE ? OR slug ILIKE ? OR url ILIKE ?",
		likeText, likeText, likeText,
	)

	webhooks, err := repository.GetPaginated(
		entity,
		pagination,
		order,
		whereable,
		"",
		db,
	)
	return webhooks, err
}
