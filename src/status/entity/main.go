package status_entity

import (
	message_entity "github.com/Altaway/wabridge-server/src/message/entity"
	status_model "github.com/Altaway/wabridge-server/src/status/model"
)

// Status is one delivery state transition reported by Meta for an outbound
// message.
type Status struct {
	status_model.StatusFields
	Message *message_entity.Message `gorm:"foreignKey:MessageID" json:"message,omitempty"`

	ProductData *status_model.ProductData `gorm:"type:jsonb;serializer:json" json:"product_data,omitempty" swaggertype:"object"`
}

// Kind returns the reported state, empty when the wrapped payload is gone.
func (s *Status) Kind() string {
	if s.ProductData == nil || s.ProductData.Status == nil {
		return ""
	}
	return string(s.ProductData.Status.Status)
}
