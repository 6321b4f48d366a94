package server

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	auth_router "github.com/Altaway/wabridge-server/src/auth/router"
	"github.com/Altaway/wabridge-server/src/config/env"
	contact_router "github.com/Altaway/wabridge-server/src/contact/router"
	"github.com/Altaway/wabridge-server/src/integration/whatsapp"
	media_router "github.com/Altaway/wabridge-server/src/media/router"
	message_router "github.com/Altaway/wabridge-server/src/message/router"
	message_websocket "github.com/Altaway/wabridge-server/src/message/websocket-router"
	status_router "github.com/Altaway/wabridge-server/src/status/router"
	status_websocket "github.com/Altaway/wabridge-server/src/status/websocket-router"
	user_router "github.com/Altaway/wabridge-server/src/user/router"
	"github.com/Altaway/wabridge-server/src/validators"
	webhook_config "github.com/Altaway/wabridge-server/src/webhook-in/config"
	webhook_router "github.com/Altaway/wabridge-server/src/webhook/router"
	webhook_worker "github.com/Altaway/wabridge-server/src/webhook/worker"
	"github.com/Altaway/wabridge-server/src/websocket"
	whatsapp_template_router "github.com/Altaway/wabridge-server/src/whatsapp-template/router"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/pterm/pterm"
)

func serve() {
	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		ExposeHeaders: "Retry-After, X-RateLimit-Limit, X-RateLimit-Remaining, X-RateLimit-Reset",
	}))

	validators.InitValidators()
	whatsapp.Load()

	// Serving http endpoints
	webhook_config.ServeWebhook(app)
	makeDocs(app)
	auth_router.Route(app)
	user_router.Route(app)
	contact_router.Route(app)
	message_router.Route(app)
	media_router.Route(app)
	webhook_router.Route(app)
	whatsapp_template_router.Route(app)
	status_router.Route(app)

	// Serving websockets
	websocketRouter := websocket.Main(app)
	message_websocket.Route(websocketRouter)
	status_websocket.Route(websocketRouter)

	// Start webhook delivery worker
	deliveryWorker := webhook_worker.NewDeliveryWorker()
	deliveryWorker.Start()

	// Setup graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		pterm.DefaultLogger.Info("Shutdown signal received, stopping services...")
		deliveryWorker.Stop()
		app.Shutdown()
	}()

	err := app.Listen(fmt.Sprintf(":%s", env.ServerPort))
	pterm.DefaultLogger.Fatal(
		fmt.Sprintf("%v", err),
	)
}
