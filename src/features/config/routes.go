package config

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the routes for the config feature.
func RegisterRoutes(app *fiber.App, manager *Manager, configPath string) {
	handler := NewHandler(manager, configPath)

	app.Get("/config", handler.GetConfig)
	app.Post("/settings/monitor", handler.UpdateMonitor)
}
