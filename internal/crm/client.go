// Package crm implements the CRM directory collaborator: a narrow
// phone-number-to-caller-record lookup over HTTP with an optional cache in
// front. Lookup failures degrade to "not found" so qualification is never
// blocked on the CRM.
package crm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"leadline/internal/config"
	"leadline/internal/models"
	"leadline/internal/validation"
)

// ErrInvalidPhone is returned for phone numbers that cannot be normalized
// into a plausible lookup key.
var ErrInvalidPhone = errors.New("invalid phone number")

// Cache is the byte-level cache in front of directory lookups. The Redis
// storage driver satisfies it; a nil cache disables caching.
type Cache interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, exp time.Duration) error
}

// Client looks up caller records in the CRM directory.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
	cache   Cache
	ttl     time.Duration
}

// NewClient creates a CRM directory client. cache may be nil.
func NewClient(cfg *config.Config, cache Cache) *Client {
	return &Client{
		baseURL: cfg.CRMBaseURL,
		token:   cfg.CRMAPIToken,
		cache:   cache,
		ttl:     time.Duration(cfg.LookupTTLMin) * time.Minute,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// lookupResponse is the directory's wire format.
type lookupResponse struct {
	Found  bool   `json:"found"`
	Type   string `json:"type"`
	Record struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Company string `json:"company"`
		AEName  string `json:"ae_name"`
		AEPhone string `json:"ae_phone"`
	} `json:"record"`
}

// Lookup resolves a phone number to a caller record. Cached results are
// served without touching the directory.
func (c *Client) Lookup(ctx context.Context, phone string) (*models.CallerRecord, error) {
	if !validation.ValidatePhone(phone) {
		return nil, ErrInvalidPhone
	}
	normalized := validation.NormalizePhone(phone)

	if record, ok := c.cached(normalized); ok {
		return record, nil
	}

	record, err := c.fetch(ctx, normalized)
	if err != nil {
		return nil, err
	}

	c.store(normalized, record)
	return record, nil
}

func (c *Client) fetch(ctx context.Context, phone string) (*models.CallerRecord, error) {
	endpoint := fmt.Sprintf("%s/callers?phone=%s", c.baseURL, url.QueryEscape(phone))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build lookup request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directory lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &models.CallerRecord{Found: false}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directory lookup returned status %d", resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode lookup response: %w", err)
	}

	record := &models.CallerRecord{
		Found:   body.Found,
		Type:    body.Type,
		Name:    body.Record.Name,
		Email:   body.Record.Email,
		Phone:   body.Record.Phone,
		Company: body.Record.Company,
		AEName:  body.Record.AEName,
		AEPhone: body.Record.AEPhone,
	}
	return record, nil
}

func cacheKey(phone string) string {
	return "crm:lookup:" + phone
}

func (c *Client) cached(phone string) (*models.CallerRecord, bool) {
	if c.cache == nil {
		return nil, false
	}
	raw, err := c.cache.Get(cacheKey(phone))
	if err != nil || len(raw) == 0 {
		return nil, false
	}
	var record models.CallerRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		slog.Warn("discarding corrupt cached caller record", "phone", phone, "error", err)
		return nil, false
	}
	return &record, true
}

func (c *Client) store(phone string, record *models.CallerRecord) {
	if c.cache == nil {
		return
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return
	}
	if err := c.cache.Set(cacheKey(phone), raw, c.ttl); err != nil {
		slog.Warn("failed to cache caller record", "phone", phone, "error", err)
	}
}
