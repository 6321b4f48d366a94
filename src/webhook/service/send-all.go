package webhook_service

import (
	"github.com/Altaway/wabridge-server/src/database"
	webhook_entity "github.com/Altaway/wabridge-server/src/webhook/entity"
	"github.com/pterm/pterm"
)

// SendAllByQuery enqueues one delivery per active subscriber matching the
// query entity. Enqueue failures are logged and skipped, so one broken
// subscriber never blocks the rest.
func SendAllByQuery(
	entity webhook_entity.Webhook,
	payload any,
) error {
	var webhooks []webhook_entity.Webhook

	if err := database.DB.
		Where(&entity).
		Where("is_active = ?", true).
		Find(&webhooks).Error; err != nil {
		return err
	}

	for i := range webhooks {
		if err := EnqueueDelivery(&webhooks[i], payload, entity.Event); err != nil {
			pterm.DefaultLogger.Error(
				"Failed to enqueue delivery for webhook " + webhooks[i].ID.String() + ": " + err.Error(),
			)
		}
	}

	return nil
}
