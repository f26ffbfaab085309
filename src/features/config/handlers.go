package config

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// Handler is the handler for the config feature.
type Handler struct {
	manager *Manager
	path    string
}

// NewHandler creates a new handler for the config feature.
func NewHandler(manager *Manager, path string) *Handler {
	return &Handler{manager: manager, path: path}
}

// GetConfig returns the current configuration with secrets redacted.
func (h *Handler) GetConfig(c *fiber.Ctx) error {
	c.Set("Content-Type", "application/json")
	return c.SendString(h.manager.GetJSON())
}

// UpdateMonitor updates the monitor section of the configuration and
// persists it. The running scheduler reads the config on every cycle, so
// path changes take effect on the next read.
func (h *Handler) UpdateMonitor(c *fiber.Ctx) error {
	type MonitorUpdateRequest struct {
		Path                string `json:"path"`
		PollIntervalSeconds int    `json:"pollIntervalSeconds"`
		Continuous          *bool  `json:"continuous"`
		MaxContentLength    int    `json:"maxContentLength"`
	}
	var req MonitorUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "cannot parse request body",
		})
	}

	updated := *h.manager.Get()
	updated.Monitor.Path = req.Path
	if req.PollIntervalSeconds >= 1 {
		updated.Monitor.PollIntervalSeconds = req.PollIntervalSeconds
	}
	if req.MaxContentLength >= 100 {
		updated.Monitor.MaxContentLength = req.MaxContentLength
	}
	if req.Continuous != nil {
		updated.Monitor.Continuous = *req.Continuous
	}
	h.manager.Update(&updated)

	if err := h.manager.Save(h.path); err != nil {
		slog.Error("Failed to persist updated configuration", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to save configuration",
		})
	}

	slog.Info("Monitor configuration updated", "path", updated.Monitor.Path)
	return c.JSON(fiber.Map{"status": "ok"})
}
