package webhook_config

import (
	"fmt"

	"github.com/Altaway/wabridge-server/src/config/env"
	webhook_handler "github.com/Altaway/wabridge-server/src/webhook-in/handler"
	webhook_middleware "github.com/Altaway/wabridge-server/src/webhook-in/middleware"
	webhook_service "github.com/Altaway/wabridge-server/src/webhook-in/service"
	whatsapp_webhook_model "github.com/Altaway/wabridge-server/src/whatsapp/webhook/model"
	"github.com/gofiber/fiber/v2"
	"github.com/pterm/pterm"
)

// NewRegistry subscribes the persistence callbacks to the events they handle.
func NewRegistry() *webhook_service.Registry {
	registry := webhook_service.NewRegistry()
	registry.On(webhook_service.MessageEvent, webhook_handler.MessageCallback)
	registry.On(webhook_service.StatusEvent, webhook_handler.StatusCallback)
	return registry
}

// ServeWebhook registers the endpoints Meta talks to at /webhook-in: the GET
// verification handshake and the POST event delivery.
func ServeWebhook(app *fiber.App) {
	registry := NewRegistry()

	group := app.Group("/webhook-in")
	group.Get("",
		webhook_middleware.MetaVerificationRequestToken(env.MetaVerifyToken),
		echoChallenge,
	)
	group.Post("",
		verifySignature,
		receiveWebhook(registry),
	)

	pterm.DefaultLogger.Info("Registered WhatsApp webhook at /webhook-in")
}

// echoChallenge completes the handshake once the token middleware passed.
func echoChallenge(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).SendString(c.Query("hub.challenge"))
}

// verifySignature skips signature checking when no app secret is configured.
func verifySignature(c *fiber.Ctx) error {
	appSecret := env.MetaAppSecret
	if appSecret == "" {
		return c.Next()
	}
	return webhook_middleware.VerifyMetaSignature(appSecret)(c)
}

// receiveWebhook parses the payload and hands it to the dispatcher. Meta
// retries deliveries that are not acknowledged with 200, so handler errors
// are logged instead of surfaced: a poison payload must not be redelivered
// forever.
func receiveWebhook(registry *webhook_service.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body whatsapp_webhook_model.Body
		if err := c.BodyParser(&body); err != nil {
			pterm.DefaultLogger.Warn("Refusing webhook delivery with unparseable body: " + err.Error())
			return c.SendStatus(fiber.StatusBadRequest)
		}

		handled, err := registry.Dispatch(c, &body)
		if !handled {
			pterm.DefaultLogger.Warn("Ignoring webhook delivery for object " + body.Object)
			return c.SendStatus(fiber.StatusNotFound)
		}
		if err != nil {
			pterm.DefaultLogger.Error(
				fmt.Sprintf("Error while dispatching webhook delivery: %s", err.Error()),
			)
		}

		return c.Status(fiber.StatusOK).SendString("Valid webhook received")
	}
}
