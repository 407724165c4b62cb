package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"

	"leadline/internal/models"
)

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req, _ := http.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) *models.ToolResponse {
	t.Helper()
	var envelope models.ToolResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return &envelope
}

func TestQualifyEndpoint_EnterpriseLead(t *testing.T) {
	app := fiber.New()
	handler := NewQualifyHandler(nil, nil)
	app.Post("/tools/qualify", handler.Qualify)

	body := `{
		"conversation_context": "We're an enterprise company needing Voice API for 1 million minutes, budget approved",
		"conversation_id": "conv-1"
	}`
	resp := postJSON(t, app, "/tools/qualify", body)

	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	envelope := decodeEnvelope(t, resp)
	if !envelope.Success {
		t.Fatalf("expected success, got error: %s", envelope.Error)
	}
	if envelope.Meta == nil {
		t.Error("expected meta with execution time")
	}

	data, err := json.Marshal(envelope.Data)
	if err != nil {
		t.Fatalf("failed to re-marshal data: %v", err)
	}
	var result models.QualifyResult
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("failed to decode qualify result: %v", err)
	}

	if result.Score != 80 {
		t.Errorf("Score = %d, want 80", result.Score)
	}
	if result.QualificationLevel != "SQL" {
		t.Errorf("QualificationLevel = %s, want SQL", result.QualificationLevel)
	}
	if !result.ShouldTransfer {
		t.Error("expected transfer for an SQL lead")
	}
	if result.TransferTarget == nil || *result.TransferTarget != "AE" {
		t.Errorf("TransferTarget = %v, want AE", result.TransferTarget)
	}

	if got := envelope.DynamicVariables["qualification_level"]; got != "SQL" {
		t.Errorf("dynamic_variables.qualification_level = %v, want SQL", got)
	}
	if got := envelope.DynamicVariables["transfer_target"]; got != "AE" {
		t.Errorf("dynamic_variables.transfer_target = %v, want AE", got)
	}
}

func TestQualifyEndpoint_EmptyContext(t *testing.T) {
	app := fiber.New()
	handler := NewQualifyHandler(nil, nil)
	app.Post("/tools/qualify", handler.Qualify)

	resp := postJSON(t, app, "/tools/qualify", `{"conversation_id": "conv-2"}`)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	envelope := decodeEnvelope(t, resp)
	if !envelope.Success {
		t.Fatalf("expected success, got error: %s", envelope.Error)
	}

	data, _ := json.Marshal(envelope.Data)
	var result models.QualifyResult
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("failed to decode qualify result: %v", err)
	}

	if result.Score != 0 {
		t.Errorf("Score = %d, want 0", result.Score)
	}
	if result.QualificationLevel != "DQ" {
		t.Errorf("QualificationLevel = %s, want DQ", result.QualificationLevel)
	}
	if result.ShouldTransfer {
		t.Error("expected no transfer for an empty conversation")
	}
	if result.TransferTarget != nil {
		t.Errorf("TransferTarget = %v, want null", *result.TransferTarget)
	}
}

func TestQualifyEndpoint_MalformedBody(t *testing.T) {
	app := fiber.New()
	handler := NewQualifyHandler(nil, nil)
	app.Post("/tools/qualify", handler.Qualify)

	resp := postJSON(t, app, "/tools/qualify", `{"conversation_context": `)
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400 for malformed JSON, got %d", resp.StatusCode)
	}

	envelope := decodeEnvelope(t, resp)
	if envelope.Success {
		t.Error("expected success=false for malformed JSON")
	}
	if envelope.Error == "" {
		t.Error("expected an error message")
	}
}

func TestQualifyEndpoint_PreviousIntentEchoed(t *testing.T) {
	app := fiber.New()
	handler := NewQualifyHandler(nil, nil)
	app.Post("/tools/qualify", handler.Qualify)

	body := `{"conversation_context": "hello", "previous_intent": "pricing_question"}`
	resp := postJSON(t, app, "/tools/qualify", body)
	envelope := decodeEnvelope(t, resp)

	data, _ := json.Marshal(envelope.Data)
	var result models.QualifyResult
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("failed to decode qualify result: %v", err)
	}
	if result.PreviousIntent != "pricing_question" {
		t.Errorf("PreviousIntent = %q, want %q", result.PreviousIntent, "pricing_question")
	}
}
