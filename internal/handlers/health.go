package handlers

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"leadline/internal/config"
)

// HealthHandler answers the platform's liveness probe.
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Check reports service identity and current time.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"service":   h.cfg.ServiceName,
		"version":   h.cfg.ServiceVersion,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
