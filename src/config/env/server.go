package env

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
)

var (
	// ServerPort is the port the HTTP server listens on.
	ServerPort string
	// Environment is the deployment mode, e.g. development or production.
	Environment string
)

func loadServerEnv() {
	ServerPort = os.Getenv("PORT")
	if ServerPort == "" {
		ServerPort = "8080"
	}

	Environment = os.Getenv("ENV")
	if Environment == "" {
		Environment = "development"
	}

	pterm.DefaultLogger.Info(
		fmt.Sprintf("Server environment done with port %s in %s mode", ServerPort, Environment),
	)
}
