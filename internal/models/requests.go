package models

import "leadline/internal/engine"

// LookupRequest asks for a CRM directory lookup by phone number. The
// conversation ID ties the resulting activity row back to the call.
type LookupRequest struct {
	PhoneNumber    string `json:"phone_number"`
	ConversationID string `json:"conversation_id,omitempty"`
}

// CallerInfo is the wire form of the structured caller record, typically
// replayed by the voice platform from an earlier lookup response.
type CallerInfo struct {
	Name             string `json:"name,omitempty"`
	Company          string `json:"company,omitempty"`
	Email            string `json:"email,omitempty"`
	ExistingCustomer bool   `json:"existing_customer,omitempty"`
	AssignedAE       string `json:"assigned_ae,omitempty"`
	AEPhone          string `json:"ae_phone,omitempty"`
}

// ToEngine converts the wire record into the engine's caller input.
func (c *CallerInfo) ToEngine() *engine.CallerInfo {
	if c == nil {
		return nil
	}
	return &engine.CallerInfo{
		Name:             c.Name,
		Company:          c.Company,
		Email:            c.Email,
		ExistingCustomer: c.ExistingCustomer,
		AssignedAE:       c.AssignedAE,
		AEPhone:          c.AEPhone,
	}
}

// QualifyRequest runs the qualification engine over a conversation.
// PreviousIntent is caller-supplied state from an earlier turn; the service
// itself keeps no per-conversation state between requests.
type QualifyRequest struct {
	ConversationContext string      `json:"conversation_context"`
	CallerInfo          *CallerInfo `json:"caller_info,omitempty"`
	PreviousIntent      string      `json:"previous_intent,omitempty"`
	ConversationID      string      `json:"conversation_id,omitempty"`
}

// NotifyRequest dispatches a call summary to the team channel.
type NotifyRequest struct {
	CallerName     string `json:"caller_name"`
	CallerCompany  string `json:"caller_company,omitempty"`
	Qualification  string `json:"qualification"`
	Score          int    `json:"score"`
	Urgency        string `json:"urgency"`
	Duration       string `json:"duration,omitempty"`
	Outcome        string `json:"outcome"`
	Summary        string `json:"summary"`
	TransferTarget string `json:"transfer_target,omitempty"`
	ConversationID string `json:"conversation_id,omitempty"`
}

// ActivityLogRequest records one tool invocation.
type ActivityLogRequest struct {
	ConversationID string `json:"conversation_id"`
	ToolUsed       string `json:"tool_used"`
	InputSummary   string `json:"input_summary"`
	OutputSummary  string `json:"output_summary"`
	DurationMs     int    `json:"duration_ms,omitempty"`
	Status         string `json:"status"`
	Error          string `json:"error,omitempty"`
	CallerCompany  string `json:"caller_company,omitempty"`
	Notes          string `json:"notes,omitempty"`
}
