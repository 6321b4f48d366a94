package status_handler

import (
	common_model "github.com/Altaway/wabridge-server/src/common/model"
	"github.com/Altaway/wabridge-server/src/database"
	"github.com/Altaway/wabridge-server/src/repository"
	status_entity "github.com/Altaway/wabridge-server/src/status/entity"
	status_model "github.com/Altaway/wabridge-server/src/status/model"
	"github.com/Altaway/wabridge-server/src/validators"
	"github.com/gofiber/fiber/v2"
)

// Get returns a paginated list of statuses.
//
//	@Summary		Retrieve statuses
//	@Description	Fetches a paginated list of statuses filtered by wam id, message, etc.
//	@Tags			Status
//	@Accept			json
//	@Produce		json
//	@Param			status	query		status_model.QueryPaginated		true	"Pagination and query parameters"
//	@Success		200		{array}		status_entity.Status			"List of statuses"
//	@Failure		400		{object}	common_model.DescriptiveError	"Invalid query parameters"
//	@Failure		500		{object}	common_model.DescriptiveError	"Failed to retrieve statuses"
//	@Security		ApiKeyAuth
//	@Router			/status [get]
func Get(c *fiber.Ctx) error {
	query := new(status_model.QueryPaginated)
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

	statuses, err := repository.GetPaginated(
		status_entity.Status{
			StatusFields: status_model.StatusFields{
				WamID:     query.WamID,
				MessageID: query.MessageID,
				Audit: common_model.Audit{
					ID: query.ID,
				},
			},
		},
		&query.Paginate,
		&query.DateOrder,
		&query.DateWhere,
		"", database.DB,
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("unable to get statuses", err, "repository").Send(),
		)
	}

	return c.Status(fiber.StatusOK).JSON(statuses)
}
