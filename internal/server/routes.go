package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"leadline/internal/db"
	"leadline/internal/handlers"
	"leadline/internal/notify"
)

// RegisterRoutes registers all webhook tool routes.
func (s *Server) RegisterRoutes(database *db.DB, directory handlers.Directory,
	notifier notify.Notifier, reasoner handlers.Reasoner) {

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(s.Cfg)
	lookupHandler := handlers.NewLookupHandler(directory, database)
	qualifyHandler := handlers.NewQualifyHandler(database, reasoner)
	notifyHandler := handlers.NewNotifyHandler(notifier, database)
	activityHandler := handlers.NewActivityHandler(database)
	dashboardHandler := handlers.NewDashboardHandler(database, s.Cfg)

	// Health probe
	s.App.Get("/", healthHandler.Check)

	// Webhook tools invoked by the voice platform
	s.App.Post("/tools/caller-lookup", lookupHandler.Lookup)
	s.App.Post("/tools/qualify", qualifyHandler.Qualify)
	s.App.Post("/tools/notify", notifyHandler.Notify)
	s.App.Post("/tools/log-activity", activityHandler.Log)

	// Ops surface
	s.App.Get("/stats", activityHandler.Stats)
	s.App.Get("/dashboard", dashboardHandler.Show)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
