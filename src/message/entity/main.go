package message_entity

import (
	contact_entity "github.com/Altaway/wabridge-server/src/contact/entity"
	message_model "github.com/Altaway/wabridge-server/src/message/model"
)

// Message is one unit of WhatsApp traffic in either direction. Inbound
// messages fill FromID and ReceiverData; outbound messages fill ToID,
// SenderData and, once Meta accepts them, ProductData.
type Message struct {
	message_model.MessageFields
	From *contact_entity.Contact `gorm:"foreignKey:FromID" json:"from,omitempty"`
	To   *contact_entity.Contact `gorm:"foreignKey:ToID" json:"to,omitempty"`

	SenderData   *message_model.SenderData   `gorm:"type:jsonb;serializer:json" json:"sender_data,omitempty" swaggertype:"object"`
	ReceiverData *message_model.ReceiverData `gorm:"type:jsonb;serializer:json" json:"receiver_data,omitempty" swaggertype:"object"`
	ProductData  *message_model.ProductData  `gorm:"type:jsonb;serializer:json" json:"product_data,omitempty" swaggertype:"object"`
}

// WamID returns the Cloud API message id regardless of direction, empty
// when the message has none yet.
func (m *Message) WamID() string {
	if m.ProductData != nil && m.ProductData.SendResponse != nil {
		if id := m.ProductData.WamID(); id != "" {
			return id
		}
	}
	if m.ReceiverData != nil && m.ReceiverData.Message != nil {
		return m.ReceiverData.Message.ID
	}
	return ""
}
