package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"leadline/internal/config"
	"leadline/internal/models"
)

func TestSendCallSummary(t *testing.T) {
	var got payload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode payload: %v", err)
		}
	}))
	defer server.Close()

	notifier := New(&config.Config{
		NotifyWebhookURL: server.URL,
		BaseURL:          "https://leadline.example.com",
	})

	err := notifier.SendCallSummary(context.Background(), &models.NotifyRequest{
		CallerName:     "Ada Diaz",
		CallerCompany:  "Initech",
		Qualification:  "SQL",
		Score:          85,
		Urgency:        "high",
		Outcome:        "Transferred",
		TransferTarget: "AE",
		Summary:        "Enterprise voice migration",
		ConversationID: "conv-123",
	})
	if err != nil {
		t.Fatalf("SendCallSummary failed: %v", err)
	}

	if got.Event != "call_summary" {
		t.Errorf("event = %q, want call_summary", got.Event)
	}
	if got.Caller != "Ada Diaz" || got.Qualification != "SQL" || got.Score != 85 {
		t.Errorf("payload = %+v", got)
	}
	if got.DashboardURL != "https://leadline.example.com/dashboard" {
		t.Errorf("dashboard_url = %q", got.DashboardURL)
	}
}

func TestSendCallSummary_Disabled(t *testing.T) {
	notifier := New(&config.Config{})

	if notifier.IsEnabled() {
		t.Error("notifier enabled without a webhook URL")
	}
	if err := notifier.SendCallSummary(context.Background(), &models.NotifyRequest{}); err != nil {
		t.Errorf("disabled notifier returned error: %v", err)
	}
}

func TestSendCallSummary_WebhookError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	notifier := New(&config.Config{NotifyWebhookURL: server.URL})

	if err := notifier.SendCallSummary(context.Background(), &models.NotifyRequest{}); err == nil {
		t.Error("expected error for 502 response")
	}
}
