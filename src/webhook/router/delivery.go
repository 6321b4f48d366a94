package webhook_router

import (
	auth_middleware "github.com/Altaway/wabridge-server/src/auth/middleware"
	webhook_handler "github.com/Altaway/wabridge-server/src/webhook/handler"
	"github.com/gofiber/fiber/v2"
)

func deliveryRoutes(group fiber.Router) {
	deliveryGroup := group.Group("/delivery")

	deliveryGroup.Get("/",
		auth_middleware.UserMiddleware, auth_middleware.SuMiddleware,
		webhook_handler.GetDeliveries)
}
