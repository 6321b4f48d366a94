package auth_handler

import (
	"errors"
	"strings"

	auth_service "github.com/Altaway/wabridge-server/src/auth/service"
	common_model "github.com/Altaway/wabridge-server/src/common/model"
	user_model "github.com/Altaway/wabridge-server/src/user/model"
	"github.com/Altaway/wabridge-server/src/validators"
	"github.com/gofiber/fiber/v2"
)

// Login exchanges email and password for a JWT.
//
//	@Summary		Authenticate user
//	@Description	Validates the credential pair and returns a signed bearer token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		user_model.Login				true	"Credentials"
//	@Success		200		{object}	user_model.LoginResponse		"Signed token"
//	@Failure		400		{object}	common_model.DescriptiveError	"Invalid request"
//	@Failure		401		{object}	common_model.DescriptiveError	"Invalid credentials"
//	@Failure		500		{object}	common_model.DescriptiveError	"Internal server error"
//	@Router			/auth/login [post]
func Login(c *fiber.Ctx) error {
	var body user_model.Login
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewParseJsonError(err).Send(),
		)
	}

	if err := validators.Validator().Struct(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewValidationError(err).Send(),
		)
	}

	// Normalize email
	body.Email = strings.ToLower(strings.TrimSpace(body.Email))

	response, err := auth_service.Login(body)
	if err != nil {
		if errors.Is(err, auth_service.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(
				common_model.NewApiError("Invalid credentials", err, "auth_service").Send(),
			)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("unable to issue token", err, "auth_service").Send(),
		)
	}

	return c.Status(fiber.StatusOK).JSON(response)
}
