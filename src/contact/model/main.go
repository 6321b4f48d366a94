package contact_model

import (
	common_model "github.com/Altaway/wabridge-server/src/common/model"
	"github.com/google/uuid"
)

// CreateContact is the request body for registering a contact manually.
type CreateContact struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=255" example:"Ada Lovelace"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email" example:"ada@example.com"`
	PhotoPath   *string `json:"photo_path,omitempty" validate:"omitempty,max=1024"`
	WaID        string  `json:"wa_id" validate:"required" example:"5511999999999"`
	PhoneNumber string  `json:"phone_number,omitempty" validate:"omitempty,max=32" example:"5511999999999"`
}

// UpdateContact is the request body for editing a contact.
type UpdateContact struct {
	ID        uuid.UUID `json:"id" validate:"required" example:"3f6f6de2-4b06-4d8b-9a42-5b2c2a7d9e31"`
	Name      *string   `json:"name,omitempty" validate:"omitempty,max=255"`
	Email     *string   `json:"email,omitempty" validate:"omitempty,email"`
	PhotoPath *string   `json:"photo_path,omitempty" validate:"omitempty,max=1024"`
	Blocked   *bool     `json:"blocked,omitempty"`
}

// Query filters contact listings.
type Query struct {
	ID          uuid.UUID `query:"id" json:"id" validate:"omitempty"`
	Name        *string   `query:"name" json:"name" validate:"omitempty"`
	Email       *string   `query:"email" json:"email" validate:"omitempty"`
	WaID        string    `query:"wa_id" json:"wa_id" validate:"omitempty"`
	PhoneNumber string    `query:"phone_number" json:"phone_number" validate:"omitempty"`
	common_model.DateOrder
	common_model.DateWhere
}

// QueryPaginated extends Query with a pagination window.
type QueryPaginated struct {
	Query
	common_model.Paginate
}
