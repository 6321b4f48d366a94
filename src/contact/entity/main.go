package contact_entity

import (
	common_model "github.com/Altaway/wabridge-server/src/common/model"
)

// Contact is one WhatsApp counterpart of the business phone number. WaID is
// the canonical WhatsApp id and is what inbound traffic is keyed on.
type Contact struct {
	common_model.Audit
	Name        *string `json:"name,omitempty" example:"Ada Lovelace"`
	Email       *string `json:"email,omitempty" example:"ada@example.com"`
	PhotoPath   *string `json:"photo_path,omitempty"`
	WaID        string  `gorm:"uniqueIndex;not null" json:"wa_id" example:"5511999999999"`
	PhoneNumber string  `json:"phone_number,omitempty" example:"5511999999999"`
	// Blocked contacts have their inbound messages dropped before persistence.
	Blocked bool `json:"blocked" example:"false"`
}
