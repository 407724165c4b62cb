package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"leadline/internal/config"
	"leadline/internal/models"
)

// Notifier dispatches call summaries to the team channel.
type Notifier interface {
	SendCallSummary(ctx context.Context, summary *models.NotifyRequest) error
	IsEnabled() bool
}

// WebhookNotifier posts summaries as JSON to a configured chat webhook.
type WebhookNotifier struct {
	url     string
	baseURL string
	client  *http.Client
	enabled bool
}

// New creates a webhook notifier. When no webhook URL is configured the
// notifier is disabled and every send is a silent no-op.
func New(cfg *config.Config) *WebhookNotifier {
	n := &WebhookNotifier{
		url:     cfg.NotifyWebhookURL,
		baseURL: cfg.BaseURL,
		enabled: cfg.IsNotifyEnabled(),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	if n.enabled {
		log.Println("Chat notifications enabled")
	} else {
		log.Println("Chat notifications disabled (NOTIFY_WEBHOOK_URL not configured)")
	}

	return n
}

// IsEnabled returns true if a webhook is configured.
func (n *WebhookNotifier) IsEnabled() bool {
	return n.enabled
}

// payload is the wire format posted to the chat webhook. Channel-specific
// rich formatting is left to the receiving side.
type payload struct {
	Event          string `json:"event"`
	Caller         string `json:"caller"`
	Company        string `json:"company,omitempty"`
	Qualification  string `json:"qualification"`
	Score          int    `json:"score"`
	Urgency        string `json:"urgency"`
	Duration       string `json:"duration,omitempty"`
	Outcome        string `json:"outcome"`
	TransferTarget string `json:"transfer_target,omitempty"`
	Summary        string `json:"summary,omitempty"`
	ConversationID string `json:"conversation_id,omitempty"`
	DashboardURL   string `json:"dashboard_url,omitempty"`
}

// SendCallSummary posts one call summary to the webhook.
func (n *WebhookNotifier) SendCallSummary(ctx context.Context, summary *models.NotifyRequest) error {
	if !n.enabled {
		return nil
	}

	body, err := json.Marshal(payload{
		Event:          "call_summary",
		Caller:         summary.CallerName,
		Company:        summary.CallerCompany,
		Qualification:  summary.Qualification,
		Score:          summary.Score,
		Urgency:        summary.Urgency,
		Duration:       summary.Duration,
		Outcome:        summary.Outcome,
		TransferTarget: summary.TransferTarget,
		Summary:        summary.Summary,
		ConversationID: summary.ConversationID,
		DashboardURL:   n.baseURL + "/dashboard",
	})
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("notification dispatch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("notification webhook returned status %d", resp.StatusCode)
	}
	return nil
}
