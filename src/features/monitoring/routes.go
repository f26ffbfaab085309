package monitoring

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the routes for the monitoring feature.
func RegisterRoutes(app *fiber.App, service *Service) {
	handler := NewHandler(service)

	app.Post("/monitor/start", handler.StartMonitor)
	app.Post("/monitor/stop", handler.StopMonitor)
	app.Post("/monitor/trigger", handler.TriggerCycle)
	app.Get("/monitor/status", handler.GetStatus)
}
