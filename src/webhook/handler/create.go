package webhook_handler

import (
	"crypto/rand"
	"encoding/hex"

	common_model "github.com/Altaway/wabridge-server/src/common/model"
	"github.com/Altaway/wabridge-server/src/database"
	"github.com/Altaway/wabridge-server/src/repository"
	"github.com/Altaway/wabridge-server/src/validators"
	webhook_entity "github.com/Altaway/wabridge-server/src/webhook/entity"
	webhook_model "github.com/Altaway/wabridge-server/src/webhook/model"
	webhook_service "github.com/Altaway/wabridge-server/src/webhook/service"
	"github.com/gofiber/fiber/v2"
)

// CreateWebhook registers a new webhook for event notifications.
//
//	@Summary		Create a new webhook
//	@Description	Creates a new webhook with the specified URL, authorization header, method, timeout, and event type.
//	@Tags			Webhook
//	@Accept			json
//	@Produce		json
//	@Param			webhook	body		webhook_model.CreateWebhook		true	"Webhook data"
//	@Success		201		{object}	CreateWebhookResponse			"Created webhook"
//	@Failure		400		{object}	common_model.DescriptiveError	"Invalid request body"
//	@Failure		500		{object}	common_model.DescriptiveError	"Internal server error"
//	@Router			/webhook [post]
//	@Security		ApiKeyAuth
func CreateWebhook(c *fiber.Ctx) error {
	var newWebhook webhook_model.CreateWebhook
	if err := c.BodyParser(&newWebhook); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewParseJsonError(err).Send(),
		)
	}

	if err := validators.Validator().Struct(&newWebhook); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewValidationError(err).Send(),
		)
	}

	slug, err := webhook_service.UniqueSlug(newWebhook.Name)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("unable to derive webhook slug", err, "webhook_service").Send(),
		)
	}

	webhookEntity := webhook_entity.Webhook{
		Name:           newWebhook.Name,
		Slug:           slug,
		Url:            newWebhook.Url,
		Authorization:  newWebhook.Authorization,
		HttpMethod:     newWebhook.HttpMethod,
		Timeout:        newWebhook.Timeout,
		Event:          newWebhook.Event,
		SigningEnabled: newWebhook.SigningEnabled,
		IsActive:       true,
	}

	if newWebhook.MaxRetries != nil {
		webhookEntity.MaxRetries = *newWebhook.MaxRetries
	} else {
		webhookEntity.MaxRetries = 3
	}

	if newWebhook.RetryDelayMs != nil {
		webhookEntity.RetryDelayMs = *newWebhook.RetryDelayMs
	} else {
		webhookEntity.RetryDelayMs = 1000
	}

	// The signing secret is returned once, on creation only.
	var signingSecret string
	if newWebhook.SigningEnabled {
		secret, err := generateSigningSecret()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(
				common_model.NewApiError("unable to generate signing secret", err, "crypto").Send(),
			)
		}
		webhookEntity.SigningSecret = secret
		signingSecret = secret
	}

	webhook, err := repository.Create(webhookEntity, database.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("unable to create webhook", err, "repository").Send(),
		)
	}

	response := CreateWebhookResponse{
		Webhook:       webhook,
		SigningSecret: signingSecret,
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}

// CreateWebhookResponse carries the created webhook plus the signing secret,
// which is never returned again.
type CreateWebhookResponse struct {
	webhook_entity.Webhook
	SigningSecret string `json:"signing_secret,omitempty"`
}

func generateSigningSecret() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return "whsec_" + hex.EncodeToString(bytes), nil
}
