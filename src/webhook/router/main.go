package webhook_router

import (
	auth_middleware "github.com/Altaway/wabridge-server/src/auth/middleware"
	webhook_handler "github.com/Altaway/wabridge-server/src/webhook/handler"
	"github.com/gofiber/fiber/v2"
)

func Route(app *fiber.App) {
	group := app.Group("/webhook")

	mainRoutes(group)
	deliveryRoutes(group)
}

func mainRoutes(group fiber.Router) {
	group.Get("/",
		auth_middleware.UserMiddleware,
		webhook_handler.GetWebhooks)
	group.Post("/",
		auth_middleware.UserMiddleware,
		webhook_handler.CreateWebhook)
	group.Put("/",
		auth_middleware.UserMiddleware,
		webhook_handler.UpdateWebhook)
	group.Delete("/",
		auth_middleware.UserMiddleware,
		webhook_handler.DeleteWebhookByID)
	group.Get("/content/like/:likeText",
		auth_middleware.UserMiddleware,
		webhook_handler.ContentLike)
	group.Post("/test",
		auth_middleware.UserMiddleware,
		webhook_handler.TestWebhook)
}
