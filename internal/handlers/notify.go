package handlers

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"

	"leadline/internal/db"
	"leadline/internal/models"
	"leadline/internal/notify"
	"leadline/internal/validation"
)

// NotifyHandler dispatches call summaries to the team channel and records
// them as call summary rows.
type NotifyHandler struct {
	notifier notify.Notifier
	db       *db.DB
}

// NewNotifyHandler creates a new notify handler.
func NewNotifyHandler(notifier notify.Notifier, database *db.DB) *NotifyHandler {
	return &NotifyHandler{notifier: notifier, db: database}
}

// Notify sends the call summary. The summary row is stored even when the
// chat dispatch fails, and a failed dispatch degrades inside the envelope.
func (h *NotifyHandler) Notify(c fiber.Ctx) error {
	started := time.Now()

	var req models.NotifyRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.CallerName == "" {
		req.CallerName = "Unknown Caller"
	}
	req.Summary = validation.TruncateSummary(req.Summary)

	summary := &models.CallSummary{
		ConversationID: req.ConversationID,
		CallerName:     req.CallerName,
		CallerCompany:  req.CallerCompany,
		Qualification:  req.Qualification,
		Score:          req.Score,
		Urgency:        req.Urgency,
		Duration:       req.Duration,
		Outcome:        req.Outcome,
		TransferTarget: req.TransferTarget,
		Summary:        req.Summary,
	}
	if summary.ConversationID == "" {
		summary.ConversationID = "unknown"
	}
	if err := h.db.InsertCallSummary(c.Context(), summary); err != nil {
		slog.Error("failed to store call summary", "conversation", summary.ConversationID, "error", err)
	}

	sendErr := h.notifier.SendCallSummary(c.Context(), &req)

	logAsync(h.db, &models.ActivityLogRequest{
		ConversationID: req.ConversationID,
		ToolUsed:       "chat_notification",
		InputSummary:   fmt.Sprintf("Caller: %s (%s)", req.CallerName, req.Qualification),
		OutputSummary:  fmt.Sprintf("Sent: %v", sendErr == nil),
		DurationMs:     int(time.Since(started).Milliseconds()),
		CallerCompany:  req.CallerCompany,
	})

	if sendErr != nil {
		slog.Error("chat notification failed", "conversation", req.ConversationID, "error", sendErr)
		return toolFailure(c, started, "notification dispatch failed", nil)
	}

	return toolSuccess(c, started, fiber.Map{
		"sent":    h.notifier.IsEnabled(),
		"call_id": summary.ID,
	}, nil)
}
