package user_handler

import (
	"net/url"

	common_model "github.com/Altaway/wabridge-server/src/common/model"
	user_entity "github.com/Altaway/wabridge-server/src/user/entity"
	user_model "github.com/Altaway/wabridge-server/src/user/model"
	user_service "github.com/Altaway/wabridge-server/src/user/service"
	"github.com/Altaway/wabridge-server/src/validators"
	"github.com/gofiber/fiber/v2"
)

// ContentKeyLike searches users by a given key and a partial text pattern.
//
//	@Summary		Search users by key and text
//	@Description	Returns a paginated list of users where the specified column matches a partial value using ILIKE.
//	@Tags			User
//	@Accept			json
//	@Produce		json
//	@Param			user		query		user_model.QueryPaginated		true	"Pagination and query parameters"
//	@Param			keyName		path		string							true	"The column to apply the like operator on (name or email)"
//	@Param			likeText	path		string							true	"The text to search for"
//	@Success		200			{array}		user_entity.User				"List of users"
//	@Failure		400			{object}	common_model.DescriptiveError	"Invalid path or query parameters"
//	@Failure		500			{object}	common_model.DescriptiveError	"Internal server error"
//	@Router			/user/content/{keyName}/like/{likeText} [get]
//	@Security		ApiKeyAuth
func ContentKeyLike(c *fiber.Ctx) error {
	decodedText, err := url.QueryUnescape(c.Params("likeText"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewApiError("unable to decode likeText", err, "net/url").Send(),
		)
	}

	decodedKey, err := url.QueryUnescape(c.Params("keyName"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewApiError("unable to decode keyName", err, "net/url").Send(),
		)
	}

	// The key name lands inside a SQL expression, so it goes through the
	// oneof validation before anything touches the database.
	params := user_model.ContentKeyLikeParams{
		KeyName:  decodedKey,
		LikeText: decodedText,
	}
	if err := validators.Validator().Struct(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewValidationError(err).Send(),
		)
	}

	query := new(user_model.QueryPaginated)
	if err := c.QueryParser(query); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewParseQueryError(err).Send(),
		)
	}

	if err := validators.Validator().Struct(query); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			common_model.NewValidationError(err).Send(),
		)
	}

	users, err := user_service.ContentKeyLike(
		params.LikeText,
		user_model.SearchableUserColumn(params.KeyName),
		user_entity.User{
			Audit: common_model.Audit{ID: query.ID},
			Email: query.Email,
			Name:  query.Name,
			Role:  query.Role,
		},
		&query.Paginate,
		&query.DateOrder,
		&query.DateWhere,
		nil,
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(
			common_model.NewApiError("unable to get users", err, "user_service").Send(),
		)
	}

	return c.Status(fiber.StatusOK).JSON(users)
}
