package user_handler

import (
	common_model "github.com/Altaway/wabridge-server/src/common/model"
	"github.com/Altaway/wabridge-server/src/config/env"
	"github.com/Altaway/wabridge-server/src/database"
	"github.com/Altaway/wabridge-server/src/repository"
	user_entity "github.com/Altaway/wabridge-server/src/user/entity"
	"github.com/Altaway/wabridge-server/src/validators"
	"github.com/gofiber/fiber/v2"
)

// DeleteCurrentUser removes the user who made the request.
//
//	@Summary		Delete current user
//	@Description	Deletes the authenticated user from the database.
//	@Tags			User
//	@Success		204	{string}	string							"No content"
//	@Failure		500	{object}	common_model.DescriptiveError	"Internal server error"
//	@Router			/user/me [delete]
//	@Security		ApiKeyAuth
func DeleteCurrentUser(c *fiber.Ctx) error {
	user := c.Locals("user").(*user_entity.User)

	if _, err := repository.DeleteWhere(
		&user_entity.User{Audit: common_model.Audit{ID: user.ID}},
		database.DB,
	); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("unable to delete user", err, "repository").Send(),
		)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteUserByID removes a user by their ID. Only admins can call this.
//
//	@Summary		Delete user by ID
//	@Description	Deletes a user by ID. The seeded admin account cannot be deleted.
//	@Tags			User
//	@Accept			json
//	@Produce		json
//	@Param			body	body		common_model.RequiredID			true	"User ID to delete"
//	@Success		204		{string}	string							"No content"
//	@Failure		400		{object}	common_model.DescriptiveError	"Invalid request body"
//	@Failure		401		{object}	common_model.DescriptiveError	"Cannot delete the root admin user"
//	@Failure		404		{object}	common_model.DescriptiveError	"User not found"
//	@Failure		500		{object}	common_model.DescriptiveError	"Internal server error"
//	@Router			/user [delete]
//	@Security		ApiKeyAuth
func DeleteUserByID(c *fiber.Ctx) error {
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

	user, err := repository.First(
		user_entity.User{Audit: common_model.Audit{ID: reqBody.ID}},
		database.DB,
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("unable to find user", err, "repository").Send(),
		)
	}
	if env.AdminEmail != "" && user.Email == env.AdminEmail {
		return c.Status(fiber.StatusUnauthorized).JSON(
			common_model.NewApiError("one cannot delete the root admin user", nil, "handler").Send(),
		)
	}

	deleted, err := repository.DeleteWhere(
		&user_entity.User{Audit: common_model.Audit{ID: reqBody.ID}},
		database.DB,
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("unable to delete user", err, "repository").Send(),
		)
	}
	if deleted == 0 {
		return c.Status(fiber.StatusNotFound).JSON(
			common_model.NewApiError("user not found", nil, "repository").Send(),
		)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
