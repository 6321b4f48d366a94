package webhook_model

import (
	common_model "github.com/Altaway/wabridge-server/src/common/model"
	"github.com/google/uuid"
)

// Event names the server-side happenings subscribers can be notified about.
type Event string

const (
	// ReceiveWhatsAppMessage fires for every inbound message persisted.
	ReceiveWhatsAppMessage Event = "receive:message"
	// ReceiveWhatsAppMessageStatus fires for every status update persisted.
	ReceiveWhatsAppMessageStatus Event = "receive:status"
	// SendWhatsAppMessage fires for every outbound message accepted by Meta.
	SendWhatsAppMessage Event = "send:message"
)

// DeliveryStatus tracks one queued notification through its lifecycle.
type DeliveryStatus string

const (
	DeliveryStatusPending    DeliveryStatus = "pending"
	DeliveryStatusAttempted  DeliveryStatus = "attempted"
	DeliveryStatusSucceeded  DeliveryStatus = "succeeded"
	DeliveryStatusDeadLetter DeliveryStatus = "dead_letter"
)

// CreateWebhook is the request body for registering a subscriber endpoint.
type CreateWebhook struct {
	Name          string `json:"name" validate:"required,max=255" example:"CRM sync"`
	Url           string `json:"url" validate:"required,url" example:"https://crm.example.com/hooks/whatsapp"`
	Authorization string `json:"authorization" validate:"omitempty,max=2048" example:"Bearer crm-token"`
	HttpMethod    string `json:"http_method" validate:"omitempty,oneof=POST PUT PATCH" example:"POST"`
	Event         Event  `json:"event" validate:"required,oneof='receive:message' 'receive:status' 'send:message'" example:"receive:message"`
	// Timeout bounds one delivery attempt, in seconds.
	Timeout        *int `json:"timeout" validate:"omitempty,gte=1,lte=120" example:"30"`
	MaxRetries     *int `json:"max_retries" validate:"omitempty,gte=0,lte=20" example:"3"`
	RetryDelayMs   *int `json:"retry_delay_ms" validate:"omitempty,gte=100" example:"1000"`
	SigningEnabled bool `json:"signing_enabled" example:"true"`
}

// UpdateWebhook is the request body for editing a subscriber endpoint.
type UpdateWebhook struct {
	ID            uuid.UUID `json:"id" validate:"required"`
	Name          string    `json:"name" validate:"omitempty,max=255"`
	Url           string    `json:"url" validate:"omitempty,url"`
	Authorization string    `json:"authorization" validate:"omitempty,max=2048"`
	HttpMethod    string    `json:"http_method" validate:"omitempty,oneof=POST PUT PATCH"`
	Event         Event     `json:"event" validate:"omitempty,oneof='receive:message' 'receive:status' 'send:message'"`
	Timeout       *int      `json:"timeout" validate:"omitempty,gte=1,lte=120"`
	MaxRetries    *int      `json:"max_retries" validate:"omitempty,gte=0,lte=20"`
	RetryDelayMs  *int      `json:"retry_delay_ms" validate:"omitempty,gte=100"`
	IsActive      *bool     `json:"is_active"`
}

// DeliveryQuery filters delivery listings.
type DeliveryQuery struct {
	ID        uuid.UUID      `query:"id" json:"id" validate:"omitempty"`
	WebhookID *uuid.UUID     `query:"webhook_id" json:"webhook_id" validate:"omitempty"`
	EventType Event          `query:"event_type" json:"event_type" validate:"omitempty,oneof='receive:message' 'receive:status' 'send:message'"`
	Status    DeliveryStatus `query:"status" json:"status" validate:"omitempty,oneof=pending attempted succeeded dead_letter"`
	common_model.DateOrder
	common_model.DateWhere
}

// DeliveryQueryPaginated extends DeliveryQuery with a pagination window.
type DeliveryQueryPaginated struct {
	DeliveryQuery
	common_model.Paginate
}

// Query filters webhook listings.
type Query struct {
	ID       uuid.UUID `query:"id" json:"id" validate:"omitempty"`
	Slug     string    `query:"slug" json:"slug" validate:"omitempty"`
	Event    Event     `query:"event" json:"event" validate:"omitempty,oneof='receive:message' 'receive:status' 'send:message'"`
	IsActive *bool     `query:"is_active" json:"is_active" validate:"omitempty"`
	common_model.DateOrder
	common_model.DateWhere
}

// QueryPaginated extends Query with a pagination window.
type QueryPaginated struct {
	Query
	common_model.Paginate
}
