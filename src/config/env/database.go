package env

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
)

var (
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDb       string
	PostgresSslMode  string
)

func loadDbEnv() {
	PostgresHost = os.Getenv("POSTGRES_HOST")
	if PostgresHost == "" {
		PostgresHost = "localhost"
	}

	PostgresPort = os.Getenv("POSTGRES_PORT")
	if PostgresPort == "" {
		PostgresPort = "5432"
	}

	PostgresUser = os.Getenv("POSTGRES_USER")
	PostgresPassword = os.Getenv("POSTGRES_PASSWORD")
	PostgresDb = os.Getenv("POSTGRES_DB")

	PostgresSslMode = os.Getenv("POSTGRES_SSL_MODE")
	if PostgresSslMode == "" {
		PostgresSslMode = "disable"
	}

	pterm.DefaultLogger.Info(
		fmt.Sprintf("Database environment done with host %s:%s and database %s", PostgresHost, PostgresPort, PostgresDb),
	)
}

// PostgresDsn renders the gorm connection string.
func PostgresDsn() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		PostgresHost, PostgresPort, PostgresUser, PostgresPassword, PostgresDb, PostgresSslMode,
	)
}
