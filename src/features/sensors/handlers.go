package sensors

import (
	"github.com/contre95/filepulse/src/features/config"
	"github.com/gofiber/fiber/v2"
)

// Handler is the handler for the sensors feature.
type Handler struct {
	publisher *Publisher
	cfg       *config.Manager
}

// NewHandler creates a new handler for the sensors feature.
func NewHandler(publisher *Publisher, cfg *config.Manager) *Handler {
	return &Handler{publisher: publisher, cfg: cfg}
}

// GetSnapshot returns the latest published snapshot.
func (h *Handler) GetSnapshot(c *fiber.Ctx) error {
	snap, ok := h.publisher.Latest()
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no snapshot captured yet",
		})
	}
	return c.JSON(snap)
}

// GetValues returns the derived sensor values for the latest snapshot.
func (h *Handler) GetValues(c *fiber.Ctx) error {
	snap, ok := h.publisher.Latest()
	if !ok {
		return c.JSON(Values{
			Preview:    ErrorPreview,
			StatusText: "no snapshot captured yet",
		})
	}
	return c.JSON(Derive(snap, h.cfg.Get().Sensors.PreviewLength))
}
