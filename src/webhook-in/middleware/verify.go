package webhook_middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pterm/pterm"
)

// SubscribeMode is the only hub.mode Meta sends on verification handshakes.
const SubscribeMode = "subscribe"

// MetaVerificationRequestToken guards the verification handshake Meta runs
// when the webhook URL is registered. Meta sends hub.mode, hub.verify_token
// and hub.challenge as query parameters and only accepts the endpoint if the
// challenge comes back. The handshake is refused unless the mode is
// "subscribe" and the token matches the configured one. An empty configured
// token refuses every handshake instead of accepting every token.
func MetaVerificationRequestToken(token string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		mode := c.Query("hub.mode")
		verifyToken := c.Query("hub.verify_token")

		if token == "" || mode != SubscribeMode || verifyToken != token {
			pterm.DefaultLogger.Warn("Refusing webhook verification handshake with mode " + mode)
			return c.SendStatus(fiber.StatusForbidden)
		}

		return c.Next()
	}
}
