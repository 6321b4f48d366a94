package auth_middleware

import (
	"errors"
	"strings"

	auth_service "github.com/Altaway/wabridge-server/src/auth/service"
	common_model "github.com/Altaway/wabridge-server/src/common/model"
	"github.com/Altaway/wabridge-server/src/database"
	user_entity "github.com/Altaway/wabridge-server/src/user/entity"
	user_model "github.com/Altaway/wabridge-server/src/user/model"
	"github.com/gofiber/fiber/v2"
)

// UserMiddleware authenticates the request with a Bearer token and stores
// the user at c.Locals("user").
func UserMiddleware(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(
			common_model.NewApiError("missing bearer token", errors.New("Authorization header is not set"), "middleware").Send(),
		)
	}

	return authenticate(c, token)
}

// WebsocketUserMiddleware authenticates upgrade requests. Browsers cannot
// set headers on websocket connections, so the token may also come through
// the token query parameter.
func WebsocketUserMiddleware(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		token = c.Query("token")
	}
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(
			common_model.NewApiError("missing bearer token", errors.New("neither Authorization header nor token query param is set"), "middleware").Send(),
		)
	}

	return authenticate(c, token)
}

// SuMiddleware restricts the route to admin users.
// Must be used after UserMiddleware.
func SuMiddleware(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*user_entity.User)
	if !ok || user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(
			common_model.NewApiError("failed to retrieve user from context locals", errors.New("invalid conversion to type user_entity.User"), "middleware").Send(),
		)
	}

	if user.Role != user_model.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(
			common_model.NewApiError("admin role required", errors.New("user is not an admin"), "middleware").Send(),
		)
	}

	return c.Next()
}

func authenticate(c *fiber.Ctx, token string) error {
	userID, err := auth_service.ParseToken(token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(
			common_model.NewApiError("invalid or expired token", err, "auth_service").Send(),
		)
	}

	var user user_entity.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(
			common_model.NewApiError("token user no longer exists", err, "gorm").Send(),
		)
	}

	c.Locals("user", &user)
	return c.Next()
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return ""
	}
	return token
}
