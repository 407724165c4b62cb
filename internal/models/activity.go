package models

import (
	"time"

	"github.com/google/uuid"
)

// ActivityEntry is one recorded tool invocation.
type ActivityEntry struct {
	ID             uuid.UUID `json:"id"`
	ConversationID string    `json:"conversation_id"`
	ToolUsed       string    `json:"tool_used"`
	InputSummary   string    `json:"input_summary"`
	OutputSummary  string    `json:"output_summary"`
	DurationMs     int       `json:"duration_ms"`
	Status         string    `json:"status"`
	Error          string    `json:"error,omitempty"`
	CallerCompany  string    `json:"caller_company,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// CallSummary is one finished call.
type CallSummary struct {
	ID             uuid.UUID `json:"id"`
	ConversationID string    `json:"conversation_id"`
	CallerName     string    `json:"caller_name"`
	CallerCompany  string    `json:"caller_company,omitempty"`
	Qualification  string    `json:"qualification"`
	Score          int       `json:"score"`
	Urgency        string    `json:"urgency"`
	Duration       string    `json:"duration,omitempty"`
	Outcome        string    `json:"outcome"`
	TransferTarget string    `json:"transfer_target,omitempty"`
	Summary        string    `json:"summary,omitempty"`
	AEName         string    `json:"ae_name,omitempty"`
	PhoneNumber    string    `json:"phone_number,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// CallStats aggregates recent call outcomes for the stats endpoint and the
// dashboard.
type CallStats struct {
	TotalCalls     int     `json:"total_calls"`
	SQLLeads       int     `json:"sql_leads"`
	SSLLeads       int     `json:"ssl_leads"`
	Transfers      int     `json:"transfers"`
	ConversionRate float64 `json:"conversion_rate"`
	PeriodDays     int     `json:"period_days"`
}

// OutcomeCount is an aggregated qualification outcome row, exported as a
// Prometheus counter on scrape.
type OutcomeCount struct {
	Tier           string
	TransferTarget string
	Urgency        string
	Count          int64
	LastSeenAt     time.Time
}
