package models

import "leadline/internal/engine"

// ToolResponse is the uniform envelope returned by every webhook tool
// endpoint. The voice platform merges DynamicVariables into the
// conversation and replays them on later turns, so degraded outcomes are
// reported inside the envelope rather than as transport errors.
type ToolResponse struct {
	Success          bool           `json:"success"`
	Data             any            `json:"data,omitempty"`
	DynamicVariables map[string]any `json:"dynamic_variables,omitempty"`
	Error            string         `json:"error,omitempty"`
	Meta             *Meta          `json:"meta,omitempty"`
}

// Meta carries per-invocation execution metadata.
type Meta struct {
	ExecutionTimeMs int64 `json:"execution_time_ms"`
}

// QualifyResult is the qualification decision as returned to the caller.
// TransferTarget is null when the conversation should continue.
type QualifyResult struct {
	Score              int            `json:"score"`
	QualificationLevel engine.Tier    `json:"qualification_level"`
	UrgencyLevel       engine.Urgency `json:"urgency_level"`
	ShouldTransfer     bool           `json:"should_transfer"`
	TransferTarget     *string        `json:"transfer_target"`
	TransferQueue      *engine.Queue  `json:"transfer_queue,omitempty"`
	Reasoning          string         `json:"reasoning"`
	PreviousIntent     string         `json:"previous_intent,omitempty"`
}

// NewQualifyResult shapes an engine decision for the wire.
func NewQualifyResult(d engine.Decision, previousIntent string) QualifyResult {
	result := QualifyResult{
		Score:              d.Qualification.Score,
		QualificationLevel: d.Qualification.Tier,
		UrgencyLevel:       d.Qualification.Urgency,
		ShouldTransfer:     d.Routing.ShouldTransfer,
		TransferQueue:      d.Routing.Queue,
		Reasoning:          d.Reasoning,
		PreviousIntent:     previousIntent,
	}
	if d.Routing.Target != engine.TargetNone {
		target := string(d.Routing.Target)
		result.TransferTarget = &target
	}
	return result
}

// DynamicVariables returns the variables the voice platform should retain
// for later turns and transfer handling.
func (r QualifyResult) DynamicVariables() map[string]any {
	vars := map[string]any{
		"qualification_score": r.Score,
		"qualification_level": string(r.QualificationLevel),
		"urgency_level":       string(r.UrgencyLevel),
		"should_transfer":     r.ShouldTransfer,
	}
	if r.TransferTarget != nil {
		vars["transfer_target"] = *r.TransferTarget
	}
	return vars
}
