package user_service

import (
	"errors"

	"github.com/Altaway/wabridge-server/src/config/env"
	"github.com/Altaway/wabridge-server/src/database"
	user_entity "github.com/Altaway/wabridge-server/src/user/entity"
	user_model "github.com/Altaway/wabridge-server/src/user/model"
	"github.com/pterm/pterm"
	"gorm.io/gorm"
)

// EnsureAdminUser creates the root admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD when no user with that email exists yet. Both variables
// unset skips seeding, so a fresh deployment without them starts with an
// empty users table.
func EnsureAdminUser(db *gorm.DB) error {
	if db == nil {
		db = database.DB
	}
	if env.AdminEmail == "" || env.AdminPassword == "" {
		pterm.DefaultLogger.Warn("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin user seeding")
		return nil
	}

	var existing user_entity.User
	err := db.Where("email = ?", env.AdminEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	// BeforeSave hashes the password before the row is written.
	admin := user_entity.User{
		Name:     "Admin",
		Email:    env.AdminEmail,
		Password: env.AdminPassword,
		Role:     user_model.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	pterm.DefaultLogger.Info("Seeded admin user " + env.AdminEmail)
	return nil
}
