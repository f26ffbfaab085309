package history

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Handler is the handler for the history feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new handler for the history feature.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetRecent returns the most recent emissions. The limit query parameter
// defaults to 50.
func (h *Handler) GetRecent(c *fiber.Ctx) error {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "limit must be a positive integer",
			})
		}
		limit = parsed
	}

	entries, err := h.service.Recent(c.Context(), limit)
	if err != nil {
		slog.Error("Failed to load emission history", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load history",
		})
	}
	return c.JSON(entries)
}
