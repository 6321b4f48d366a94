package auth_router

import (
	auth_handler "github.com/Altaway/wabridge-server/src/auth/handler"
	auth_middleware "github.com/Altaway/wabridge-server/src/auth/middleware"
	"github.com/gofiber/fiber/v2"
)

func Route(app *fiber.App) {
	group := app.Group("/auth")

	group.Post("/login",
		auth_middleware.LoginRateLimiter,
		auth_handler.Login,
	)
}
