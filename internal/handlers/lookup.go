package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"

	"leadline/internal/crm"
	"leadline/internal/db"
	"leadline/internal/models"
)

// Directory resolves phone numbers to caller records.
type Directory interface {
	Lookup(ctx context.Context, phone string) (*models.CallerRecord, error)
}

// LookupHandler handles CRM caller lookups for the greeting step.
type LookupHandler struct {
	directory Directory
	db        *db.DB
}

// NewLookupHandler creates a new lookup handler. directory may be nil when
// no CRM is configured; lookups then degrade to "not found".
func NewLookupHandler(directory Directory, database *db.DB) *LookupHandler {
	return &LookupHandler{directory: directory, db: database}
}

// Lookup resolves the caller's phone number to a directory record and
// returns it as dynamic variables. Directory outages degrade to an
// account_found=false result so the conversation continues.
func (h *LookupHandler) Lookup(c fiber.Ctx) error {
	started := time.Now()

	var req models.LookupRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.PhoneNumber == "" {
		return badRequest(c, "phone_number is required")
	}

	record := h.resolve(c.Context(), req.PhoneNumber)
	vars := record.DynamicVariables()

	logAsync(h.db, &models.ActivityLogRequest{
		ConversationID: req.ConversationID,
		ToolUsed:       "caller_lookup",
		InputSummary:   "Phone: " + req.PhoneNumber,
		OutputSummary:  fmt.Sprintf("Found: %v", record.Found),
		DurationMs:     int(time.Since(started).Milliseconds()),
	})

	return toolSuccess(c, started, record, vars)
}

// resolve performs the directory lookup, mapping every failure mode onto a
// not-found record.
func (h *LookupHandler) resolve(ctx context.Context, phone string) *models.CallerRecord {
	if h.directory == nil {
		return &models.CallerRecord{Found: false}
	}

	record, err := h.directory.Lookup(ctx, phone)
	if err != nil {
		if err != crm.ErrInvalidPhone {
			slog.Error("caller lookup failed", "error", err)
		}
		return &models.CallerRecord{Found: false}
	}
	return record
}
