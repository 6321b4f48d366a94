package contact_service

import (
	"errors"

	contact_entity "github.com/Altaway/wabridge-server/src/contact/entity"
	"github.com/Altaway/wabridge-server/src/database"
	"gorm.io/gorm"
)

// GetOrSave returns the contact matching the entity's WaID, creating it first
// if no row exists yet. The profile name is only applied on creation so that
// renames done through the API are not clobbered by inbound traffic.
func GetOrSave(contact contact_entity.Contact, name string, db *gorm.DB) (contact_entity.Contact, error) {
	var out contact_entity.Contact

	if db == nil {
		db = database.DB
	}

	err := db.Model(&contact_entity.Contact{}).
		Where("wa_id = ?", contact.WaID).
		First(&out).Error
	if err == nil {
		return out, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return out, err
	}

	if name != "" {
		contact.Name = &name
	}
	if contact.PhoneNumber == "" {
		contact.PhoneNumber = contact.WaID
	}
	if err := db.Model(&contact).Create(&contact).Error; err != nil {
		return out, err
	}

	return contact, nil
}
