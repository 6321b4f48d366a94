package message_router

import (
	auth_middleware "github.com/Altaway/wabridge-server/src/auth/middleware"
	message_handler "github.com/Altaway/wabridge-server/src/message/handler"
	"github.com/gofiber/fiber/v2"
)

func conversationRoutes(group fiber.Router) {
	convGroup := group.Group("/conversation")

	convGroup.Get("/contact/:contactID",
		auth_middleware.UserMiddleware,
		message_handler.GetConversation)
}
