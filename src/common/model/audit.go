package common_model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Audit carries the identity and bookkeeping columns shared by every entity.
type Audit struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id,omitempty" example:"3f6f6de2-4b06-4d8b-9a42-5b2c2a7d9e31"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at,omitempty" example:"2024-01-01T12:00:00Z"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at,omitempty" example:"2024-01-01T12:00:00Z"`
}

// AuditWithDeleted extends Audit with gorm soft deletion.
type AuditWithDeleted struct {
	Audit
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty" swaggertype:"string"`
}

// RequiredID is the body shape for delete-by-id style endpoints.
type RequiredID struct {
	ID uuid.UUID `json:"id" validate:"required" example:"3f6f6de2-4b06-4d8b-9a42-5b2c2a7d9e31"`
}
