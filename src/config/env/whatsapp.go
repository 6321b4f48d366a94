package env

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
)

var (
	// WabaID is the business phone number id used to send messages.
	WabaID string
	// WabaAccountID is the WhatsApp Business Account id used for templates
	// and media.
	WabaAccountID   string
	WabaAccessToken string
	GraphApiVersion string
	GraphApiBaseURL string
	// DefaultLanguageCode fills template sends that omit a language.
	DefaultLanguageCode string
	MetaVerifyToken     string
	MetaAppSecret       string
)

func loadWhatsAppEnv() {
	WabaID = os.Getenv("WABA_ID")
	WabaAccountID = os.Getenv("WABA_ACCOUNT_ID")
	WabaAccessToken = os.Getenv("WABA_ACCESS_TOKEN")
	GraphApiVersion = os.Getenv("GRAPH_API_VERSION")
	MetaVerifyToken = os.Getenv("META_VERIFY_TOKEN")
	MetaAppSecret = os.Getenv("META_APP_SECRET")

	GraphApiBaseURL = os.Getenv("GRAPH_API_BASE_URL")
	if GraphApiBaseURL == "" {
		GraphApiBaseURL = "https://graph.facebook.com"
	}

	DefaultLanguageCode = os.Getenv("DEFAULT_LANGUAGE_CODE")
	if DefaultLanguageCode == "" {
		DefaultLanguageCode = "en_US"
	}

	required := map[string]string{
		"WABA_ID":           WabaID,
		"WABA_ACCOUNT_ID":   WabaAccountID,
		"WABA_ACCESS_TOKEN": WabaAccessToken,
		"GRAPH_API_VERSION": GraphApiVersion,
		"META_VERIFY_TOKEN": MetaVerifyToken,
	}
	for name, value := range required {
		if value == "" {
			pterm.DefaultLogger.Warn(
				fmt.Sprintf("Required environment variable %s is not set", name),
			)
		}
	}

	pterm.DefaultLogger.Info(
		fmt.Sprintf(
			"WhatsApp environment done with waba id %s and Graph API version %s",
			WabaID,
			GraphApiVersion,
		),
	)
}
