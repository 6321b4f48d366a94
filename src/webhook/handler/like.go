package webhook_handler

import (
	"net/url"

	common_model "github.com/Altaway/wabridge-server/src/common/model"
	"github.com/Altaway/wabridge-server/src/validators"
	webhook_entity "github.com/Altaway/wabridge-server/src/webhook/entity"
	webhook_model "github.com/Altaway/wabridge-server/src/webhook/model"
	webhook_service "github.com/Altaway/wabridge-server/src/webhook/service"
	"github.com/gofiber/fiber/v2"
)

// ContentLike returns webhooks whose name, slug or url matches a partial text.
//
//	@Summary		Query webhooks by partial value
//	@Description	Filters webhooks using the ILIKE operator on name, slug and url.
//	@Tags			Webhook
//	@Accept			json
//	@Produce		json
//	@Param			webhook		query		webhook_model.QueryPaginated	true	"Pagination and query parameters"
//	@Param			likeText	path		string							true	"Partial text to match"
//	@Success		200			{array}		webhook_entity.Webhook			"List of webhooks"
//	@Failure		400			{object}	common_model.DescriptiveError	"Invalid query or path parameters"
//	@Failure		500			{object}	common_model.DescriptiveError	"Internal server error"
//	@Router			/webhook/content/like/{likeText} [get]
//	@Security		ApiKeyAuth
func ContentLike(c *fiber.Ctx) error {
	likeText, err := url.QueryUnescape(c.Params("likeText"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewApiError("unable to decode likeText", err, "net/url").Send(),
		)
	}

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

	webhooks, err := webhook_service.ContentLike(
		likeText,
		webhook_entity.Webhook{
			Audit: common_model.Audit{ID: query.ID},
			Event: query.Event,
		},
		&query.Paginate,
		&query.DateOrder,
		&query.DateWhere,
		nil,
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("unable to get webhooks", err, "webhook_service").Send(),
		)
	}

	return c.Status(fiber.StatusOK).JSON(webhooks)
}
