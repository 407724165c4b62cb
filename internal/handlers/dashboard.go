package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"leadline/internal/config"
	"leadline/internal/db"
)

// DashboardHandler renders the ops overview page.
type DashboardHandler struct {
	db  *db.DB
	cfg *config.Config
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(database *db.DB, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{db: database, cfg: cfg}
}

// Show renders recent calls and trailing-week statistics.
func (h *DashboardHandler) Show(c fiber.Ctx) error {
	days := fiber.Query(c, "days", 7)
	if days < 1 || days > 365 {
		days = 7
	}

	stats, err := h.db.GetCallStats(c.Context(), days)
	if err != nil {
		slog.Error("failed to load dashboard stats", "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load stats")
	}

	recent, err := h.db.RecentCallSummaries(c.Context(), 20)
	if err != nil {
		slog.Error("failed to load recent calls", "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load recent calls")
	}

	return c.Render("dashboard", fiber.Map{
		"Title":   "Call Dashboard",
		"Service": h.cfg.ServiceName,
		"Stats":   stats,
		"Recent":  recent,
	})
}
