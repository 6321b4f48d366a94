package status_entity

import (
	"testing"

	status_model "github.com/Altaway/wabridge-server/src/status/model"
	whatsapp_webhook_model "github.com/Altaway/wabridge-server/src/whatsapp/webhook/model"
	"github.com/stretchr/testify/assert"
)

func TestStatusKind(t *testing.T) {
	t.Run("ReportsWrappedState", func(t *testing.T) {
		status := Status{
			ProductData: &status_model.ProductData{
				Status: &whatsapp_webhook_model.Status{
					Status: whatsapp_webhook_model.StatusDelivered,
				},
			},
		}
		assert.Equal(t, "delivered", status.Kind())
	})

	t.Run("EmptyWithoutPayload", func(t *testing.T) {
		var status Status
		assert.Empty(t, status.Kind())

		status.ProductData = &status_model.ProductData{}
		assert.Empty(t, status.Kind())
	})
}
