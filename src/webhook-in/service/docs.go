package webhook_service

import (
	_ "github.com/Altaway/wabridge-server/src/whatsapp/webhook/model"
	"github.com/gofiber/fiber/v2"
)

// postWebHookDocs handles incoming webhook events from WhatsApp Cloud API.
//
//	@Summary		Handle webhook events
//	@Description	Verifies the payload signature and dispatches every change to the subscribed handlers. Handled payloads are acknowledged with 200 even if a handler fails.
//	@Tags			Webhook In
//	@Accept			json
//	@Produce		json
//	@Param			input	body		whatsapp_webhook_model.Body	true	"Content sent by WhatsApp Cloud API"
//	@Success		200		{string}	string						"Valid webhook received"
//	@Router			/webhook-in [post]
func postWebHookDocs(_ *fiber.Ctx) error {
	return nil
}

// getWebHookDocs verifies webhook configuration for WhatsApp Cloud API.
//
//	@Summary		Verify webhook endpoint
//	@Description	Used by Meta to verify the validity of the webhook endpoint.
//	@Tags			Webhook In
//	@Accept			json
//	@Produce		json
//	@Param			hub.mode			query		string	true	"Subscription mode (should be 'subscribe')"
//	@Param			hub.challenge		query		int		true	"Challenge token returned by the endpoint"
//	@Param			hub.verify_token	query		string	true	"Verification token defined in Meta dashboard"
//	@Success		200					{string}	string	"hub.challenge echoed back"
//	@Router			/webhook-in [get]
func getWebHookDocs(_ *fiber.Ctx) error {
	return nil
}
