package webhook_entity

import (
	"time"

	common_model "github.com/Altaway/wabridge-server/src/common/model"
	webhook_model "github.com/Altaway/wabridge-server/src/webhook/model"
	"github.com/google/uuid"
)

// Webhook is one subscriber endpoint registered for server events.
type Webhook struct {
	common_model.Audit
	Name string `json:"name" example:"CRM sync"`
	// Slug is a stable handle derived from Name, unique per event.
	Slug          string              `gorm:"uniqueIndex" json:"slug" example:"crm-sync"`
	Url           string              `gorm:"not null" json:"url" example:"https://crm.example.com/hooks/whatsapp"`
	Authorization string              `json:"authorization,omitempty"`
	HttpMethod    string              `gorm:"default:POST" json:"http_method" example:"POST"`
	Event         webhook_model.Event `gorm:"index;not null" json:"event" example:"receive:message"`
	// Timeout bounds one delivery attempt, in seconds.
	Timeout        *int   `json:"timeout,omitempty" example:"30"`
	MaxRetries     int    `gorm:"default:3" json:"max_retries" example:"3"`
	RetryDelayMs   int    `gorm:"default:1000" json:"retry_delay_ms" example:"1000"`
	SigningEnabled bool   `json:"signing_enabled"`
	SigningSecret  string `json:"-"`
	IsActive       bool   `gorm:"default:true" json:"is_active"`
}

// WebhookDelivery is one queued notification to one subscriber. The worker
// claims due rows, attempts the request and reschedules or dead-letters.
type WebhookDelivery struct {
	common_model.Audit
	WebhookID uuid.UUID `gorm:"type:uuid;index;not null" json:"webhook_id"`
	Webhook   *Webhook  `gorm:"foreignKey:WebhookID" json:"webhook,omitempty"`

	EventType      webhook_model.Event `gorm:"index" json:"event_type" example:"receive:message"`
	IdempotencyKey string              `gorm:"uniqueIndex" json:"idempotency_key"`
	Payload        any                 `gorm:"type:jsonb;serializer:json" json:"payload,omitempty" swaggertype:"object"`

	Status       webhook_model.DeliveryStatus `gorm:"default:pending;index" json:"status" example:"pending"`
	AttemptCount int                          `json:"attempt_count" example:"0"`
	MaxAttempts  int                          `json:"max_attempts" example:"4"`

	NextAttemptAt    *time.Time `json:"next_attempt_at,omitempty"`
	LastAttemptAt    *time.Time `json:"last_attempt_at,omitempty"`
	LastHttpCode     *int       `json:"last_http_code,omitempty" example:"503"`
	LastResponseBody *string    `json:"last_response_body,omitempty"`
	LastError        *string    `json:"last_error,omitempty"`
}
