package webhook_handler

import (
	common_model "github.com/Altaway/wabridge-server/src/common/model"
	"github.com/Altaway/wabridge-server/src/database"
	"github.com/Altaway/wabridge-server/src/validators"
	webhook_entity "github.com/Altaway/wabridge-server/src/webhook/entity"
	"github.com/gofiber/fiber/v2"
)

// DeleteWebhookByID deletes a webhook based on its ID.
//
//	@Summary		Delete a webhook
//	@Description	Deletes a webhook using the provided unique ID.
//	@Tags			Webhook
//	@Accept			json
//	@Produce		json
//	@Param			body	body	common_model.RequiredID	true	"Webhook ID to delete"
//	@Success		204		"Webhook deleted successfully"
//	@Failure		400		{object}	common_model.DescriptiveError	"Invalid request body"
//	@Failure		500		{object}	common_model.DescriptiveError	"Internal server error"
//	@Router			/webhook [delete]
//	@Security		ApiKeyAuth
func DeleteWebhookByID(c *fiber.Ctx) error {
	var reqBody common_model.RequiredID
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewParseJsonError(err).Send(),
		)
	}

	if err := validators.Validator().Struct(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewValidationError(err).Send(),
		)
	}

	result := database.DB.Where("id = ?", reqBody.ID).Delete(&webhook_entity.Webhook{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("unable to delete webhook", result.Error, "database").Send(),
		)
	}

	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(
			common_model.NewApiError("webhook not found", nil, "handler").Send(),
		)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
