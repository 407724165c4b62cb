package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/gofiber/fiber/v3"

	"leadline/internal/models"
)

type stubDirectory struct {
	record *models.CallerRecord
	err    error
}

func (s *stubDirectory) Lookup(ctx context.Context, phone string) (*models.CallerRecord, error) {
	return s.record, s.err
}

func TestLookupEndpoint_KnownCaller(t *testing.T) {
	directory := &stubDirectory{record: &models.CallerRecord{
		Found:   true,
		Type:    "contact",
		Name:    "Dana Rivera",
		Email:   "dana@acme.example",
		Company: "Acme Corp",
		AEName:  "Sam Ortiz",
		AEPhone: "+15550123456",
	}}

	app := fiber.New()
	handler := NewLookupHandler(directory, nil)
	app.Post("/tools/caller-lookup", handler.Lookup)

	resp := postJSON(t, app, "/tools/caller-lookup", `{"phone_number": "+15559876543"}`)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	envelope := decodeEnvelope(t, resp)
	if !envelope.Success {
		t.Fatalf("expected success, got error: %s", envelope.Error)
	}

	vars := envelope.DynamicVariables
	if vars["account_found"] != "true" {
		t.Errorf("account_found = %v, want true", vars["account_found"])
	}
	if vars["first_name"] != "Dana" {
		t.Errorf("first_name = %v, want Dana", vars["first_name"])
	}
	if vars["last_name"] != "Rivera" {
		t.Errorf("last_name = %v, want Rivera", vars["last_name"])
	}
	if vars["ae_name"] != "Sam Ortiz" {
		t.Errorf("ae_name = %v, want Sam Ortiz", vars["ae_name"])
	}
}

func TestLookupEndpoint_DirectoryFailureDegrades(t *testing.T) {
	directory := &stubDirectory{err: errors.New("connection refused")}

	app := fiber.New()
	handler := NewLookupHandler(directory, nil)
	app.Post("/tools/caller-lookup", handler.Lookup)

	resp := postJSON(t, app, "/tools/caller-lookup", `{"phone_number": "+15559876543"}`)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200 despite directory outage, got %d", resp.StatusCode)
	}

	envelope := decodeEnvelope(t, resp)
	if !envelope.Success {
		t.Fatalf("expected success envelope, got error: %s", envelope.Error)
	}
	if envelope.DynamicVariables["account_found"] != "false" {
		t.Errorf("account_found = %v, want false", envelope.DynamicVariables["account_found"])
	}
}

func TestLookupEndpoint_NoDirectoryConfigured(t *testing.T) {
	app := fiber.New()
	handler := NewLookupHandler(nil, nil)
	app.Post("/tools/caller-lookup", handler.Lookup)

	resp := postJSON(t, app, "/tools/caller-lookup", `{"phone_number": "+15559876543"}`)
	envelope := decodeEnvelope(t, resp)
	if !envelope.Success {
		t.Fatalf("expected success envelope, got error: %s", envelope.Error)
	}
	if envelope.DynamicVariables["account_found"] != "false" {
		t.Errorf("account_found = %v, want false", envelope.DynamicVariables["account_found"])
	}
}

func TestLookupEndpoint_MissingPhone(t *testing.T) {
	app := fiber.New()
	handler := NewLookupHandler(nil, nil)
	app.Post("/tools/caller-lookup", handler.Lookup)

	resp := postJSON(t, app, "/tools/caller-lookup", `{}`)
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400 for missing phone_number, got %d", resp.StatusCode)
	}
}
