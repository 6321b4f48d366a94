package database_migrate

import (
	"fmt"
	"os"

	contact_entity "github.com/Altaway/wabridge-server/src/contact/entity"
	"github.com/Altaway/wabridge-server/src/database"
	_ "github.com/Altaway/wabridge-server/src/database/migrations"
	message_entity "github.com/Altaway/wabridge-server/src/message/entity"
	status_entity "github.com/Altaway/wabridge-server/src/status/entity"
	user_entity "github.com/Altaway/wabridge-server/src/user/entity"
	user_service "github.com/Altaway/wabridge-server/src/user/service"
	webhook_entity "github.com/Altaway/wabridge-server/src/webhook/entity"
	"github.com/pressly/goose/v3"
	"github.com/pterm/pterm"
)

const gooseTableMain = "goose_db_version"

func init() {
	automaticMigrations()
	gooseMigrations()
	seedData()
}

// Configures automatic migrations with ORM.
func automaticMigrations() {
	pterm.DefaultLogger.Info("Adding automatic migrations")
	err := database.DB.AutoMigrate(
		&user_entity.User{},
		&contact_entity.Contact{},
		&message_entity.Message{},
		&status_entity.Status{},
		&webhook_entity.Webhook{},
		&webhook_entity.WebhookDelivery{},
	)
	if err != nil {
		pterm.DefaultLogger.Error(fmt.Sprintf("Unable to add automatic migrations: %s", err))
		os.Exit(1)
	}
	pterm.DefaultLogger.Info("Automatic migrations done")
}

// Executes goose migrations.
func gooseMigrations() {
	pterm.DefaultLogger.Info("Executing goose migrations...")
	goose.SetDialect("postgres")
	goose.SetTableName(gooseTableMain)

	db, _ := database.DB.DB()
	if err := goose.Up(db, "src/database/migrations"); err != nil {
		pterm.DefaultLogger.Error(fmt.Sprintf("Unable to execute goose migrations: %s", err))
		os.Exit(1)
	}

	pterm.DefaultLogger.Info("Goose migrations executed")
}

// Seeds the root admin account after the schema is in place.
func seedData() {
	if err := user_service.EnsureAdminUser(nil); err != nil {
		pterm.DefaultLogger.Error(fmt.Sprintf("Unable to seed admin user: %s", err))
		os.Exit(1)
	}
}
