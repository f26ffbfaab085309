package hosting

import (
	"github.com/contre95/filepulse/src/features/config"
	"github.com/contre95/filepulse/src/features/monitoring"
	"github.com/contre95/filepulse/src/features/sensors"
	"github.com/gofiber/fiber/v2"
)

// DashboardHandler renders the status page.
type DashboardHandler struct {
	cfg       *config.Manager
	service   *monitoring.Service
	publisher *sensors.Publisher
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(cfg *config.Manager, service *monitoring.Service, publisher *sensors.Publisher) *DashboardHandler {
	return &DashboardHandler{cfg: cfg, service: service, publisher: publisher}
}

// Index renders the dashboard with the latest snapshot and sensor values.
func (h *DashboardHandler) Index(c *fiber.Ctx) error {
	status := h.service.Status()

	data := fiber.Map{
		"Status":      status,
		"HasSnapshot": false,
	}

	if snap, ok := h.publisher.Latest(); ok {
		data["HasSnapshot"] = true
		data["Snapshot"] = snap
		data["Values"] = sensors.Derive(snap, h.cfg.Get().Sensors.PreviewLength)
	}

	return c.Render("index", data)
}
