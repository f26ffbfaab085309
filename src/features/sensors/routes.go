package sensors

import (
	"github.com/contre95/filepulse/src/features/config"
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the routes for the sensors feature.
func RegisterRoutes(app *fiber.App, publisher *Publisher, cfg *config.Manager) {
	handler := NewHandler(publisher, cfg)

	app.Get("/snapshot", handler.GetSnapshot)
	app.Get("/sensors", handler.GetValues)
}
