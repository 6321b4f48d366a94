// Package database owns the gorm connection shared by the whole server.
// Importing it connects to Postgres at init time.
package database

import (
	"fmt"

	"github.com/Altaway/wabridge-server/src/config/env"
	"github.com/pterm/pterm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

// DB is the connection pool used by every repository call.
var DB *gorm.DB

func init() {
	Connect()
}

// Connect opens the pool against the configured Postgres instance.
func Connect() {
	pterm.DefaultLogger.Info("Connecting to the database...")

	logLevel := gorm_logger.Warn
	if env.Environment == "production" {
		logLevel = gorm_logger.Error
	}

	db, err := gorm.Open(postgres.Open(env.PostgresDsn()), &gorm.Config{
		Logger: gorm_logger.Default.LogMode(logLevel),
	})
	if err != nil {
		pterm.DefaultLogger.Fatal(
			fmt.Sprintf("Unable to connect to the database: %s", err),
		)
	}

	DB = db

	pterm.DefaultLogger.Info(
		fmt.Sprintf("Database connection done with host %s:%s", env.PostgresHost, env.PostgresPort),
	)
}
