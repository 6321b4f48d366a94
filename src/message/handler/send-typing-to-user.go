package message_handler

import (
	common_model "github.com/Altaway/wabridge-server/src/common/model"
	message_entity "github.com/Altaway/wabridge-server/src/message/entity"
	message_model "github.com/Altaway/wabridge-server/src/message/model"
	message_service "github.com/Altaway/wabridge-server/src/message/service"
	"github.com/Altaway/wabridge-server/src/validators"
	"github.com/gofiber/fiber/v2"
)

// SendTypingToUser shows the typing indicator in the conversation.
//
//	@Summary		Send typing indicator
//	@Description	Marks the latest inbound message as read and displays the typing indicator until a message is sent or 25 seconds pass.
//	@Tags			WhatsApp message
//	@Accept			json
//	@Produce		json
//	@Param			message	query		message_model.QueryPaginated			true	"Pagination and filter parameters"
//	@Success		200		{object}	whatsapp_message_model.StatusResponse	"Success response"
//	@Failure		400		{object}	common_model.DescriptiveError			"Invalid query parameters"
//	@Failure		500		{object}	common_model.DescriptiveError			"Failed to send typing indicator"
//	@Security		ApiKeyAuth
//	@Router			/message/whatsapp/send-typing [post]
func SendTypingToUser(c *fiber.Ctx) error {
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

	query.Paginate.Limit = 1

	r, err := message_service.SendTypingToUser(
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
		"",
		nil,
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("unable to send typing indicator to user", err, "message_service").Send(),
		)
	}

	return c.Status(fiber.StatusOK).JSON(r)
}
