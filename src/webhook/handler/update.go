package webhook_handler

import (
	common_model "github.com/Altaway/wabridge-server/src/common/model"
	"github.com/Altaway/wabridge-server/src/database"
	"github.com/Altaway/wabridge-server/src/repository"
	"github.com/Altaway/wabridge-server/src/validators"
	webhook_entity "github.com/Altaway/wabridge-server/src/webhook/entity"
	webhook_model "github.com/Altaway/wabridge-server/src/webhook/model"
	"github.com/gofiber/fiber/v2"
)

// UpdateWebhook updates an existing webhook using the provided data.
//
//	@Summary		Update an existing webhook
//	@Description	Updates a webhook identified by its ID with new URL, authorization, event, and method settings.
//	@Tags			Webhook
//	@Accept			json
//	@Produce		json
//	@Param			webhook	body		webhook_model.UpdateWebhook		true	"Updated webhook data"
//	@Success		200		{object}	webhook_entity.Webhook			"Updated webhook"
//	@Failure		400		{object}	common_model.DescriptiveError	"Invalid request body"
//	@Failure		500		{object}	common_model.DescriptiveError	"Internal server error"
//	@Router			/webhook [put]
//	@Security		ApiKeyAuth
func UpdateWebhook(c *fiber.Ctx) error {
	var editWebhook webhook_model.UpdateWebhook
	if err := c.BodyParser(&editWebhook); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewParseJsonError(err).Send(),
		)
	}

	if err := validators.Validator().Struct(editWebhook); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewValidationError(err).Send(),
		)
	}

	data := webhook_entity.Webhook{
		Name:          editWebhook.Name,
		Url:           editWebhook.Url,
		Authorization: editWebhook.Authorization,
		Event:         editWebhook.Event,
		HttpMethod:    editWebhook.HttpMethod,
		Timeout:       editWebhook.Timeout,
	}
	if editWebhook.MaxRetries != nil {
		data.MaxRetries = *editWebhook.MaxRetries
	}
	if editWebhook.RetryDelayMs != nil {
		data.RetryDelayMs = *editWebhook.RetryDelayMs
	}

	webhook, err := repository.Updates(
		data,
		&webhook_entity.Webhook{
			Audit: common_model.Audit{
				ID: editWebhook.ID,
			},
		}, database.DB,
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("unable to update webhook", err, "repository").Send(),
		)
	}

	// IsActive is a plain bool, so the non-zero update above skips it.
	if editWebhook.IsActive != nil && webhook.IsActive != *editWebhook.IsActive {
		if err := database.DB.Model(&webhook).Update("is_active", *editWebhook.IsActive).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(
				common_model.NewApiError("unable to update webhook active flag", err, "gorm").Send(),
			)
		}
		webhook.IsActive = *editWebhook.IsActive
	}

	return c.Status(fiber.StatusOK).JSON(webhook)
}
