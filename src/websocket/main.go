package websocket

import (
	auth_middleware "github.com/Altaway/wabridge-server/src/auth/middleware"
	fiberwebsocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// Main mounts the /websocket group. Every stream shares the upgrade check
// and the token authentication middleware.
func Main(app *fiber.App) fiber.Router {
	group := app.Group("/websocket")

	group.Use(func(c *fiber.Ctx) error {
		if !fiberwebsocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	group.Use(auth_middleware.WebsocketUserMiddleware)

	return group
}
