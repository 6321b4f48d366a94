package message_handler

import (
	common_model "github.com/Altaway/wabridge-server/src/common/model"
	"github.com/Altaway/wabridge-server/src/database"
	message_entity "github.com/Altaway/wabridge-server/src/message/entity"
	message_model "github.com/Altaway/wabridge-server/src/message/model"
	"github.com/Altaway/wabridge-server/src/repository"
	"github.com/Altaway/wabridge-server/src/validators"
	"github.com/gofiber/fiber/v2"
)

// Get returns a paginated list of messages.
//
//	@Summary		Retrieve messages
//	@Description	Fetches a paginated list of messages filtered by sender, receiver, etc.
//	@Tags			Message
//	@Accept			json
//	@Produce		json
//	@Param			message	query		message_model.QueryPaginated	true	"Pagination and query parameters"
//	@Success		200		{array}		message_entity.Message			"List of messages"
//	@Failure		400		{object}	common_model.DescriptiveError	"Invalid query parameters"
//	@Failure		500		{object}	common_model.DescriptiveError	"Failed to retrieve messages"
//	@Security		ApiKeyAuth
//	@Router			/message [get]
func Get(c *fiber.Ctx) error {
	query := new(message_model.QueryPaginated)
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

	db := database.DB.Joins("From").Joins("To")

	messages, err := repository.GetPaginated(
		message_entity.Message{
			MessageFields: message_model.MessageFields{
				FromID: query.FromID,
				ToID:   query.ToID,
				AuditWithDeleted: common_model.AuditWithDeleted{
					Audit: common_model.Audit{
						ID: query.ID,
					},
				},
			},
		},
		&query.Paginate,
		&query.DateOrder,
		&query.DateWhereWithDeletedAt,
		"messages", db,
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("unable to get messages", err, "repository").Send(),
		)
	}

	return c.Status(fiber.StatusOK).JSON(messages)
}
