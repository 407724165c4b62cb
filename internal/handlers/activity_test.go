package handlers

import (
	"strings"
	"testing"

	"leadline/internal/models"
)

func TestEntryFromRequest_Defaults(t *testing.T) {
	entry := entryFromRequest(&models.ActivityLogRequest{
		ToolUsed: "qualification",
	})

	if entry.ConversationID != "unknown" {
		t.Errorf("ConversationID = %q, want %q", entry.ConversationID, "unknown")
	}
	if entry.Status != "success" {
		t.Errorf("Status = %q, want %q", entry.Status, "success")
	}
	if entry.DurationMs != 0 {
		t.Errorf("DurationMs = %d, want 0", entry.DurationMs)
	}
}

func TestEntryFromRequest_ClampsAndTruncates(t *testing.T) {
	entry := entryFromRequest(&models.ActivityLogRequest{
		ToolUsed:      "chat_notification",
		InputSummary:  strings.Repeat("x", 5000),
		OutputSummary: "ok",
		DurationMs:    -250,
		Status:        "error",
		Error:         "timeout",
	})

	if len(entry.InputSummary) != 4000 {
		t.Errorf("InputSummary length = %d, want 4000", len(entry.InputSummary))
	}
	if entry.DurationMs != 0 {
		t.Errorf("DurationMs = %d, want 0 for negative input", entry.DurationMs)
	}
	if entry.Status != "error" {
		t.Errorf("Status = %q, want %q", entry.Status, "error")
	}
}

func TestEntryFromRequest_PreservesFields(t *testing.T) {
	entry := entryFromRequest(&models.ActivityLogRequest{
		ConversationID: "conv-42",
		ToolUsed:       "caller_lookup",
		InputSummary:   "Phone: +15550001111",
		OutputSummary:  "Found: true",
		DurationMs:     87,
		CallerCompany:  "Acme Corp",
		Notes:          "greeting step",
	})

	if entry.ConversationID != "conv-42" {
		t.Errorf("ConversationID = %q, want conv-42", entry.ConversationID)
	}
	if entry.DurationMs != 87 {
		t.Errorf("DurationMs = %d, want 87", entry.DurationMs)
	}
	if entry.CallerCompany != "Acme Corp" {
		t.Errorf("CallerCompany = %q, want Acme Corp", entry.CallerCompany)
	}
	if entry.Notes != "greeting step" {
		t.Errorf("Notes = %q, want greeting step", entry.Notes)
	}
}
