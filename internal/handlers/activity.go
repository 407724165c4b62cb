package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"

	"leadline/internal/db"
	"leadline/internal/models"
	"leadline/internal/validation"
)

// ActivityHandler records tool invocations and serves call statistics.
type ActivityHandler struct {
	db *db.DB
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(database *db.DB) *ActivityHandler {
	return &ActivityHandler{db: database}
}

// Log records one tool invocation row.
func (h *ActivityHandler) Log(c fiber.Ctx) error {
	started := time.Now()

	var req models.ActivityLogRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.ToolUsed == "" {
		return badRequest(c, "tool_used is required")
	}

	entry := entryFromRequest(&req)
	if err := h.db.InsertActivity(c.Context(), entry); err != nil {
		slog.Error("failed to record activity", "tool", req.ToolUsed, "error", err)
		return toolFailure(c, started, "failed to record activity", nil)
	}

	return toolSuccess(c, started, fiber.Map{
		"id":        entry.ID,
		"logged_at": entry.CreatedAt,
	}, nil)
}

// Stats returns aggregated call statistics for the trailing period.
func (h *ActivityHandler) Stats(c fiber.Ctx) error {
	days := fiber.Query(c, "days", 7)
	if days < 1 || days > 365 {
		days = 7
	}

	stats, err := h.db.GetCallStats(c.Context(), days)
	if err != nil {
		slog.Error("failed to aggregate call stats", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ToolResponse{
			Success: false,
			Error:   "failed to aggregate call stats",
		})
	}

	return c.JSON(models.ToolResponse{Success: true, Data: stats})
}

// entryFromRequest shapes a log request into a storable row, clamping and
// truncating boundary values.
func entryFromRequest(req *models.ActivityLogRequest) *models.ActivityEntry {
	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = "unknown"
	}
	status := req.Status
	if status == "" {
		status = "success"
	}
	return &models.ActivityEntry{
		ConversationID: conversationID,
		ToolUsed:       req.ToolUsed,
		InputSummary:   validation.TruncateSummary(req.InputSummary),
		OutputSummary:  validation.TruncateSummary(req.OutputSummary),
		DurationMs:     validation.ClampDuration(req.DurationMs),
		Status:         status,
		Error:          req.Error,
		CallerCompany:  req.CallerCompany,
		Notes:          req.Notes,
	}
}

// logAsync records an activity row off the request path. Failures are logged
// and never surface to the caller.
func logAsync(database *db.DB, req *models.ActivityLogRequest) {
	if database == nil {
		return
	}
	entry := entryFromRequest(req)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := database.InsertActivity(ctx, entry); err != nil {
			slog.Error("background activity logging failed", "tool", entry.ToolUsed, "error", err)
		}
	}()
}
