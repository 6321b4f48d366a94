// Package env loads every configuration value the server needs from the
// process environment, optionally seeded from a .env file at the repository
// root. Values are exposed as package-level variables filled at init time.
package env

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
)

func init() {
	loadEnv()
	loadServerEnv()
	loadDbEnv()
	loadAuthEnv()
	loadWhatsAppEnv()
}

func loadEnv() {
	pterm.DefaultLogger.Info(
		"Loading environment variables...",
	)

	err := godotenv.Load(".env")
	if err != nil {
		pterm.DefaultLogger.Warn(
			fmt.Sprintf("Some error occurred loading the environment file at root directory: %s", err),
		)
		pterm.DefaultLogger.Warn(
			"Using environment variables from the system",
		)
	}
}
