package status_model

import (
	common_model "github.com/Altaway/wabridge-server/src/common/model"
	whatsapp_webhook_model "github.com/Altaway/wabridge-server/src/whatsapp/webhook/model"
	"github.com/google/uuid"
)

// StatusFields is shared between the entity and its query models.
type StatusFields struct {
	common_model.Audit
	// WamID is the Cloud API id of the message the status refers to.
	WamID string `gorm:"index" json:"wam_id,omitempty" example:"wamid.HBgMNTUxMTk5OTk5OTk5FQIAERgSOEI1RkY3QkND"`
	// MessageID links to the stored message, nil when the status arrived
	// for a message this server never saw.
	MessageID *uuid.UUID `gorm:"type:uuid;index" json:"message_id,omitempty"`
}

// ProductData wraps the raw webhook status, keeping conversation and
// pricing details queryable by jsonb path.
type ProductData struct {
	Status *whatsapp_webhook_model.Status `json:"status,omitempty"`
}

// Query filters status listings.
type Query struct {
	ID        uuid.UUID  `query:"id" json:"id" validate:"omitempty"`
	WamID     string     `query:"wam_id" json:"wam_id" validate:"omitempty"`
	MessageID *uuid.UUID `query:"message_id" json:"message_id" validate:"omitempty"`
	common_model.DateOrder
	common_model.DateWhere
}

// QueryPaginated extends Query with a pagination window.
type QueryPaginated struct {
	Query
	common_model.Paginate
}
