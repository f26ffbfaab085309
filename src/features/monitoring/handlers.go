package monitoring

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// Handler is the handler for the monitoring feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new handler for the monitoring feature.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// StartMonitor starts the scheduler. Starting a running monitor is a no-op.
func (h *Handler) StartMonitor(c *fiber.Ctx) error {
	h.service.Start(context.Background())
	slog.Info("Monitor start requested via API")
	return c.JSON(h.service.Status())
}

// StopMonitor stops the scheduler. Stopping a stopped monitor is a no-op.
func (h *Handler) StopMonitor(c *fiber.Ctx) error {
	h.service.Stop()
	slog.Info("Monitor stop requested via API")
	return c.JSON(h.service.Status())
}

// GetStatus returns the scheduler state and active configuration.
func (h *Handler) GetStatus(c *fiber.Ctx) error {
	return c.JSON(h.service.Status())
}

// TriggerCycle requests an immediate read cycle.
func (h *Handler) TriggerCycle(c *fiber.Ctx) error {
	h.service.TriggerNow()
	return c.JSON(h.service.Status())
}
