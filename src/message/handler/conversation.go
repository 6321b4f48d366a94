package message_handler

import (
	common_model "github.com/Altaway/wabridge-server/src/common/model"
	message_entity "github.com/Altaway/wabridge-server/src/message/entity"
	message_model "github.com/Altaway/wabridge-server/src/message/model"
	message_service "github.com/Altaway/wabridge-server/src/message/service"
	"github.com/Altaway/wabridge-server/src/validators"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetConversation returns paginated messages exchanged with a specific contact.
//
//	@Summary		Get conversation messages
//	@Description	Retrieves a paginated list of messages sent to or received from the specified contact.
//	@Tags			Message conversation
//	@Accept			json
//	@Produce		json
//	@Param			message		query		message_model.QueryPaginated	true	"Pagination and filter parameters"
//	@Param			contactID	path		string							true	"Contact ID"
//	@Success		200			{array}		message_entity.Message			"Conversation messages"
//	@Failure		400			{object}	common_model.DescriptiveError	"Invalid query or ID"
//	@Failure		500			{object}	common_model.DescriptiveError	"Failed to retrieve messages"
//	@Security		ApiKeyAuth
//	@Router			/message/conversation/contact/{contactID} [get]
func GetConversation(c *fiber.Ctx) error {
	contactID, err := uuid.Parse(c.Params("contactID"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewApiError("unable to parse contact id string to UUID", err, "github.com/google/uuid").Send(),
		)
	}

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

	messages, err := message_service.GetConversation(
		contactID,
		message_entity.Message{
			MessageFields: message_model.MessageFields{
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
		nil,
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("unable to get conversation messages", err, "message_service").Send(),
		)
	}

	return c.Status(fiber.StatusOK).JSON(messages)
}
