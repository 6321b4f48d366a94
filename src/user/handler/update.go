package user_handler

import (
	common_model "github.com/Altaway/wabridge-server/src/common/model"
	"github.com/Altaway/wabridge-server/src/config/env"
	"github.com/Altaway/wabridge-server/src/database"
	"github.com/Altaway/wabridge-server/src/repository"
	user_entity "github.com/Altaway/wabridge-server/src/user/entity"
	user_model "github.com/Altaway/wabridge-server/src/user/model"
	"github.com/Altaway/wabridge-server/src/validators"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// UpdateCurrentUser updates the details of the authenticated user.
//
//	@Summary		Update current user
//	@Description	Updates the profile details of the authenticated user.
//	@Tags			User
//	@Accept			json
//	@Produce		json
//	@Param			body	body		user_model.UpdateCurrent		true	"User data to update"
//	@Success		200		{object}	user_entity.User				"User updated successfully"
//	@Failure		400		{object}	common_model.DescriptiveError	"Invalid request body"
//	@Failure		500		{object}	common_model.DescriptiveError	"Internal server error"
//	@Router			/user/me [put]
//	@Security		ApiKeyAuth
func UpdateCurrentUser(c *fiber.Ctx) error {
	var editUser user_model.UpdateCurrent
	if err := c.BodyParser(&editUser); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(common_model.NewParseJsonError(err).Send())
	}

	if err := validators.Validator().Struct(&editUser); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(common_model.NewValidationError(err).Send())
	}

	user := c.Locals("user").(*user_entity.User)
	data := user_entity.User{
		Name:     editUser.Name,
		Email:    editUser.Email,
		Password: editUser.Password,
	}

	// Updates builds the SET clause from this struct directly, without the
	// BeforeSave rewrite, so the hash has to happen here.
	if data.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(
				common_model.NewApiError("unable to hash password", err, "golang.org/x/crypto/bcrypt").Send(),
			)
		}
		data.Password = string(hashedPassword)
	}

	updatedUser, err := repository.Updates(
		data,
		&user_entity.User{Audit: common_model.Audit{ID: user.ID}},
		database.DB,
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("unable to update user", err, "repository").Send(),
		)
	}

	return c.Status(fiber.StatusOK).JSON(updatedUser)
}

// UpdateUserByID updates a user by their ID.
//
//	@Summary		Update user by ID
//	@Description	Updates user data by ID. Restricted to admins. The seeded admin account cannot be updated.
//	@Tags			User
//	@Accept			json
//	@Produce		json
//	@Param			body	body		user_model.Update				true	"User data to update"
//	@Success		200		{object}	user_entity.User				"User updated successfully"
//	@Failure		400		{object}	common_model.DescriptiveError	"Invalid request body"
//	@Failure		401		{object}	common_model.DescriptiveError	"Unauthorized"
//	@Failure		500		{object}	common_model.DescriptiveError	"Internal server error"
//	@Router			/user [put]
//	@Security		ApiKeyAuth
func UpdateUserByID(c *fiber.Ctx) error {
	var editUser user_model.Update
	if err := c.BodyParser(&editUser); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(common_model.NewParseJsonError(err).Send())
	}

	if err := validators.Validator().Struct(&editUser); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(common_model.NewValidationError(err).Send())
	}

	user, err := repository.First(
		user_entity.User{Audit: common_model.Audit{ID: editUser.ID}},
		database.DB,
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("unable to find user", err, "repository").Send(),
		)
	}
	if env.AdminEmail != "" && user.Email == env.AdminEmail {
		return c.Status(fiber.StatusUnauthorized).JSON(
			common_model.NewApiError("one cannot update the root admin user", nil, "handler").Send(),
		)
	}

	data := user_entity.User{
		Name:  editUser.Name,
		Email: editUser.Email,
		Role:  editUser.Role,
	}

	updatedUser, err := repository.Updates(
		data,
		&user_entity.User{Audit: common_model.Audit{ID: editUser.ID}},
		database.DB,
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("unable to update user", err, "repository").Send(),
		)
	}

	return c.Status(fiber.StatusOK).JSON(updatedUser)
}
