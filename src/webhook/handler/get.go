package webhook_handler

import (
	common_model "github.com/Altaway/wabridge-server/src/common/model"
	"github.com/Altaway/wabridge-server/src/database"
	"github.com/Altaway/wabridge-server/src/repository"
	"github.com/Altaway/wabridge-server/src/validators"
	webhook_entity "github.com/Altaway/wabridge-server/src/webhook/entity"
	webhook_model "github.com/Altaway/wabridge-server/src/webhook/model"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetWebhooks returns a paginated list of registered webhooks.
//
//	@Summary		Get webhooks paginated
//	@Description	Returns a paginated list of registered webhooks.
//	@Tags			Webhook
//	@Accept			json
//	@Produce		json
//	@Param			paginate	query		webhook_model.QueryPaginated	true	"Query parameters"
//	@Success		200			{array}		webhook_entity.Webhook			"List of webhooks"
//	@Failure		400			{object}	common_model.DescriptiveError	"Invalid query parameters"
//	@Failure		500			{object}	common_model.DescriptiveError	"Internal server error"
//	@Router			/webhook [get]
//	@Security		ApiKeyAuth
func GetWebhooks(c *fiber.Ctx) error {
	query := new(webhook_model.QueryPaginated)
	if err := c.QueryParser(query); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewParseJsonError(err).Send(),
		)
	}

	if err := validators.Validator().Struct(query); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewValidationError(err).Send(),
		)
	}

	entity := webhook_entity.Webhook{
		Audit: common_model.Audit{ID: query.ID},
		Slug:  query.Slug,
		Event: query.Event,
	}

	db := database.DB
	if query.IsActive != nil {
		db = db.Where("is_active = ?", *query.IsActive)
	}

	webhooks, err := repository.GetPaginated(
		entity,
		&query.Paginate,
		&query.DateOrder,
		&query.DateWhere,
		"", db,
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("unable to get webhooks", err, "repository").Send(),
		)
	}

	return c.Status(fiber.StatusOK).JSON(webhooks)
}

// GetDeliveries returns a paginated list of queued and finished deliveries.
//
//	@Summary		Get webhook deliveries paginated
//	@Description	Returns a paginated list of webhook delivery attempts, newest first by default.
//	@Tags			Webhook
//	@Accept			json
//	@Produce		json
//	@Param			paginate	query		webhook_model.DeliveryQueryPaginated	true	"Query parameters"
//	@Success		200			{array}		webhook_entity.WebhookDelivery			"List of deliveries"
//	@Failure		400			{object}	common_model.DescriptiveError			"Invalid query parameters"
//	@Failure		500			{object}	common_model.DescriptiveError			"Internal server error"
//	@Router			/webhook/delivery [get]
//	@Security		ApiKeyAuth
func GetDeliveries(c *fiber.Ctx) error {
	query := new(webhook_model.DeliveryQueryPaginated)
	if err := c.QueryParser(query); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewParseJsonError(err).Send(),
		)
	}

	if err := validators.Validator().Struct(query); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewValidationError(err).Send(),
		)
	}

	var webhookID uuid.UUID
	if query.WebhookID != nil {
		webhookID = *query.WebhookID
	}

	deliveries, err := repository.GetPaginated(
		webhook_entity.WebhookDelivery{
			Audit:     common_model.Audit{ID: query.ID},
			WebhookID: webhookID,
			EventType: query.EventType,
			Status:    query.Status,
		},
		&query.Paginate,
		&query.DateOrder,
		&query.DateWhere,
		"", database.DB.Preload("Webhook"),
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("unable to get deliveries", err, "repository").Send(),
		)
	}

	return c.Status(fiber.StatusOK).JSON(deliveries)
}
