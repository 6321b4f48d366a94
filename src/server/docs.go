package server

import (
	_ "github.com/Altaway/wabridge-server/docs"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// makeDocs mounts the swagger UI built from the handler annotations.
func makeDocs(app *fiber.App) {
	app.Get("/swagger/*", swagger.HandlerDefault)
}
