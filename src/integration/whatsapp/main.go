// Package whatsapp wires the Cloud API client from the environment and
// exposes it as the process-wide singleton used by services and handlers.
package whatsapp

import (
	"github.com/Altaway/wabridge-server/src/config/env"
	whatsapp_client "github.com/Altaway/wabridge-server/src/whatsapp/client"
	"github.com/pterm/pterm"
)

// WabaApi is the shared client for the configured business phone number.
var WabaApi *whatsapp_client.Api

// Load builds the singleton from the WhatsApp environment section. Must run
// after env loading and before any route that talks to the Graph API.
func Load() {
	pterm.DefaultLogger.Info("Loading WhatsApp integration...")

	WabaApi = whatsapp_client.New(whatsapp_client.Config{
		AccessToken:   env.WabaAccessToken,
		PhoneNumberID: env.WabaID,
		AccountID:     env.WabaAccountID,
		Version:       env.GraphApiVersion,
		BaseURL:       env.GraphApiBaseURL,
	})

	pterm.DefaultLogger.Info("WhatsApp integration loaded")
}
