// Package hosting wires the HTTP surface and outbound notifiers.
package hosting

import (
	"fmt"
	"log/slog"

	"github.com/contre95/filepulse/src/features/config"
	"github.com/contre95/filepulse/src/features/history"
	"github.com/contre95/filepulse/src/features/metrics"
	"github.com/contre95/filepulse/src/features/monitoring"
	"github.com/contre95/filepulse/src/features/sensors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
)

// Server is the HTTP server for the application.
type Server struct {
	app  *fiber.App
	port uint32
}

// NewServer creates a new HTTP server.
func NewServer(cfg *config.Manager, configPath string, monitoringService *monitoring.Service, publisher *sensors.Publisher, historyService *history.Service, recorder *metrics.Recorder) *Server {
	engine := html.New("./views", ".html")
	engine.Debug(cfg.Get().Logger.Level == "debug")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			slog.Error("Internal Server Error", "error", err)
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		},
		AppName:               "Filepulse",
		DisableStartupMessage: true,
		EnablePrintRoutes:     cfg.Get().Server.PrintRoutes,
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	dashboard := NewDashboardHandler(cfg, monitoringService, publisher)
	app.Get("/", dashboard.Index)

	monitoring.RegisterRoutes(app, monitoringService)
	sensors.RegisterRoutes(app, publisher, cfg)
	history.RegisterRoutes(app, historyService)
	config.RegisterRoutes(app, cfg, configPath)
	metrics.RegisterRoutes(app, recorder)

	return &Server{app: app, port: cfg.Get().Server.Port}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	return s.app.Listen(":" + fmt.Sprint(s.port))
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
