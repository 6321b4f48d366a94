package message_router

import (
	auth_middleware "github.com/Altaway/wabridge-server/src/auth/middleware"
	message_handler "github.com/Altaway/wabridge-server/src/message/handler"
	"github.com/gofiber/fiber/v2"
)

func whatsappRoutes(group fiber.Router) {
	wppGroup := group.Group("/whatsapp")

	wppGroup.Post("",
		auth_middleware.UserMiddleware,
		message_handler.SendMessage)
	wppGroup.Get("/wam-id/:wamID",
		auth_middleware.UserMiddleware,
		message_handler.GetWamID)
	wppGroup.Post("/mark-as-read",
		auth_middleware.UserMiddleware,
		message_handler.MarkWhatsAppMessageAsReadToUser)
	wppGroup.Post("/send-typing",
		auth_middleware.UserMiddleware,
		message_handler.SendTypingToUser)
}
