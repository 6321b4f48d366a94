package whatsapp_template_handler

import (
	common_model "github.com/Altaway/wabridge-server/src/common/model"
	"github.com/Altaway/wabridge-server/src/integration/whatsapp"
	"github.com/Altaway/wabridge-server/src/validators"
	whatsapp_client "github.com/Altaway/wabridge-server/src/whatsapp/client"
	"github.com/gofiber/fiber/v2"
)

// Get retrieves WhatsApp templates from the Graph API with pagination.
//
//	@Summary		Get WhatsApp templates
//	@Description	Retrieves a paginated list of WhatsApp templates using the Graph API.
//	@Tags			WhatsApp template
//	@Accept			json
//	@Produce		json
//	@Param			template	query		whatsapp_client.TemplateQueryParams	true	"Pagination and query parameters"
//	@Success		200			{object}	whatsapp_client.GetTemplateResponse	"List of templates"
//	@Failure		400			{object}	common_model.DescriptiveError		"Invalid query parameters"
//	@Failure		500			{object}	common_model.DescriptiveError		"Unable to retrieve templates from API"
//	@Router			/whatsapp-template [get]
//	@Security		ApiKeyAuth
func Get(c *fiber.Ctx) error {
	query := new(whatsapp_client.TemplateQueryParams)
	if err := c.QueryParser(query); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(common_model.NewParseQueryError(err).Send())
	}
	if err := validators.Validator().Struct(query); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(common_model.NewValidationError(err).Send())
	}

	templates, err := whatsapp.WabaApi.GetTemplates(*query)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("unable to get templates", err, "whatsapp_client").Send(),
		)
	}

	return c.Status(fiber.StatusOK).JSON(templates)
}
