// Package message_model holds the request, query and jsonb column shapes of
// the message feature. The jsonb wrappers keep the exact Cloud API payloads
// next to each message row, one wrapper per traffic direction.
package message_model

import (
	common_model "github.com/Altaway/wabridge-server/src/common/model"
	whatsapp_message_model "github.com/Altaway/wabridge-server/src/whatsapp/message/model"
	whatsapp_webhook_model "github.com/Altaway/wabridge-server/src/whatsapp/webhook/model"
	"github.com/google/uuid"
)

// MessageFields is shared between the entity and its query models so
// struct-based filtering stays in one place.
type MessageFields struct {
	common_model.AuditWithDeleted
	FromID *uuid.UUID `gorm:"type:uuid;index" json:"from_id,omitempty" example:"3f6f6de2-4b06-4d8b-9a42-5b2c2a7d9e31"`
	ToID   *uuid.UUID `gorm:"type:uuid;index" json:"to_id,omitempty" example:"b86fbc6c-6b5b-4a50-b8b4-ce53d6e10a2f"`
}

// SenderData wraps the outbound Cloud API request body.
type SenderData struct {
	Message *whatsapp_message_model.Message `json:"message,omitempty"`
}

// ReceiverData wraps the inbound webhook message.
type ReceiverData struct {
	Message *whatsapp_webhook_model.Message `json:"message,omitempty"`
}

// ProductData embeds the Cloud API send response, so the wam id of an
// outbound message lives at product_data->'messages'->0->>'id'.
type ProductData struct {
	*whatsapp_message_model.SendResponse
}

// SendWhatsAppMessage is the request body for sending a message to a stored
// contact.
type SendWhatsAppMessage struct {
	ToID       uuid.UUID                      `json:"to_id" validate:"required" example:"b86fbc6c-6b5b-4a50-b8b4-ce53d6e10a2f"`
	SenderData whatsapp_message_model.Message `json:"sender_data" validate:"required"`
}

// JsonMessageKey names a jsonb column that content searches can target.
type JsonMessageKey string

const (
	SenderDataKey   JsonMessageKey = "sender_data"
	ReceiverDataKey JsonMessageKey = "receiver_data"
	ProductDataKey  JsonMessageKey = "product_data"
)

// ContentKeyLikeParams are the path params of the per-column content search.
type ContentKeyLikeParams struct {
	KeyName  JsonMessageKey `params:"keyName" json:"key_name" validate:"required,oneof=sender_data receiver_data product_data" example:"sender_data"`
	LikeText string         `params:"likeText" json:"like_text" validate:"required" example:"%hello%"`
}

// Query filters message listings.
type Query struct {
	ID     uuid.UUID  `query:"id" json:"id" validate:"omitempty"`
	FromID *uuid.UUID `query:"from_id" json:"from_id" validate:"omitempty"`
	ToID   *uuid.UUID `query:"to_id" json:"to_id" validate:"omitempty"`
	common_model.DateOrder
	common_model.DateWhereWithDeletedAt
}

// QueryPaginated extends Query with a pagination window.
type QueryPaginated struct {
	Query
	common_model.Paginate
}
