package user_model

import (
	common_model "github.com/Altaway/wabridge-server/src/common/model"
	"github.com/google/uuid"
)

// Role gates the administrative endpoints.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Create is the request body for registering a user.
type Create struct {
	Name     string `json:"name" validate:"required,max=255" example:"Jane Operator"`
	Email    string `json:"email" validate:"required,email" example:"jane@example.com"`
	Password string `json:"password" validate:"required,min=8" example:"correct horse battery staple"`
	Role     Role   `json:"role" validate:"omitempty,oneof=admin user" example:"user"`
}

// UpdateCurrent is the request body for the authenticated user editing their
// own profile. Role changes go through the administrative Update instead.
type UpdateCurrent struct {
	Name     string `json:"name" validate:"omitempty,max=255"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=8"`
}

// Update is the request body for an administrator editing any user by id.
type Update struct {
	ID    uuid.UUID `json:"id" validate:"required"`
	Name  string    `json:"name" validate:"omitempty,max=255"`
	Email string    `json:"email" validate:"omitempty,email"`
	Role  Role      `json:"role" validate:"omitempty,oneof=admin user"`
}

// Login is the credential pair exchanged for a JWT.
type Login struct {
	Email    string `json:"email" validate:"required,email" example:"jane@example.com"`
	Password string `json:"password" validate:"required" example:"correct horse battery staple"`
}

// LoginResponse carries the signed token.
type LoginResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// QueryPaginated filters user listings.
type QueryPaginated struct {
	ID    uuid.UUID `query:"id" json:"id" validate:"omitempty"`
	Name  string    `query:"name" json:"name" validate:"omitempty"`
	Email string    `query:"email" json:"email" validate:"omitempty"`
	Role  Role      `query:"role" json:"role" validate:"omitempty,oneof=admin user"`
	common_model.DateOrder
	common_model.DateWhere
	common_model.Paginate
}

// SearchableUserColumn names a column the keyed search may scan. The value is
// interpolated into a SQL expression, so it must come from the validated set
// below and never straight from the request path.
type SearchableUserColumn string

const (
	SearchableName  SearchableUserColumn = "name"
	SearchableEmail SearchableUserColumn = "email"
)

// ContentKeyLikeParams are the path parameters of the keyed user search.
type ContentKeyLikeParams struct {
	KeyName  string `params:"keyName" validate:"required,oneof=name email"`
	LikeText string `params:"likeText" validate:"required"`
}
