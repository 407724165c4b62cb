package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	"leadline/internal/db"
	"leadline/internal/engine"
	"leadline/internal/metrics"
	"leadline/internal/models"
)

// Reasoner optionally rewrites decision reasoning into a natural summary.
type Reasoner interface {
	Phrase(ctx context.Context, transcript string, decision engine.Decision) string
}

// QualifyHandler runs the qualification and routing engine.
type QualifyHandler struct {
	db       *db.DB
	reasoner Reasoner
}

// NewQualifyHandler creates a new qualify handler. reasoner may be nil; the
// deterministic reasoning is used then.
func NewQualifyHandler(database *db.DB, reasoner Reasoner) *QualifyHandler {
	return &QualifyHandler{db: database, reasoner: reasoner}
}

// Qualify scores the conversation, classifies urgency and decides routing.
// A missing transcript is treated as empty text rather than an error, so a
// decision is always produced.
func (h *QualifyHandler) Qualify(c fiber.Ctx) error {
	started := time.Now()

	var req models.QualifyRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	decision := engine.Evaluate(req.ConversationContext, req.CallerInfo.ToEngine())
	if h.reasoner != nil {
		decision.Reasoning = h.reasoner.Phrase(c.Context(), req.ConversationContext, decision)
	}

	result := models.NewQualifyResult(decision, req.PreviousIntent)

	metrics.RecordOutcome(
		string(decision.Qualification.Tier),
		string(decision.Routing.Target),
		string(decision.Qualification.Urgency),
	)

	company := ""
	if req.CallerInfo != nil {
		company = req.CallerInfo.Company
	}
	logAsync(h.db, &models.ActivityLogRequest{
		ConversationID: req.ConversationID,
		ToolUsed:       "qualification",
		InputSummary:   fmt.Sprintf("Context: %d chars", len(req.ConversationContext)),
		OutputSummary: fmt.Sprintf("%s score=%d urgency=%s transfer=%v",
			decision.Qualification.Tier, decision.Qualification.Score,
			decision.Qualification.Urgency, decision.Routing.ShouldTransfer),
		DurationMs:    int(time.Since(started).Milliseconds()),
		CallerCompany: company,
	})

	return toolSuccess(c, started, result, result.DynamicVariables())
}
