// File: services/extraction/duckling.go
package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const secondsPerDay = 24 * 3600

// DucklingClient implements EntityNormalizer against a Duckling /parse
// endpoint (the rasa/duckling container).
type DucklingClient struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewDucklingClient creates a client for the Duckling service at baseURL.
func NewDucklingClient(baseURL string, logger *zap.Logger) *DucklingClient {
	return &DucklingClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 5 * time.Second},
		logger:  logger,
	}
}

// ducklingValue mirrors the "value" object of one parsed entity. Shapes
// differ per dimension: times carry an ISO string in Value (or Values),
// numbers a float, durations additionally a Normalized span in seconds.
type ducklingValue struct {
	Value      json.RawMessage   `json:"value"`
	Values     []json.RawMessage `json:"values"`
	Normalized *struct {
		Value float64 `json:"value"`
	} `json:"normalized"`
}

type ducklingEntity struct {
	Value ducklingValue `json:"value"`
}

func (d *DucklingClient) ParseTime(ctx context.Context, text string) (*time.Time, error) {
	raw, _, err := d.query(ctx, text, "time")
	if err != nil || raw == nil {
		return nil, err
	}
	var iso string
	if err := json.Unmarshal(raw, &iso); err != nil {
		return nil, fmt.Errorf("duckling: unexpected time payload: %w", err)
	}
	// Duckling emits ISO-8601 with millisecond precision and a zone offset.
	ts, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return nil, fmt.Errorf("duckling: bad timestamp %q: %w", iso, err)
	}
	return &ts, nil
}

func (d *DucklingClient) ParseNumber(ctx context.Context, text string) (*float64, error) {
	raw, _, err := d.query(ctx, text, "number")
	if err != nil || raw == nil {
		return nil, err
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, fmt.Errorf("duckling: unexpected number payload: %w", err)
	}
	return &n, nil
}

// ParseDuration returns the span as a count of days. Duckling normalizes
// durations to seconds.
func (d *DucklingClient) ParseDuration(ctx context.Context, text string) (*float64, error) {
	raw, normalized, err := d.query(ctx, text, "duration")
	if err != nil {
		return nil, err
	}
	if normalized != nil {
		days := *normalized / secondsPerDay
		return &days, nil
	}
	if raw == nil {
		return nil, nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, fmt.Errorf("duckling: unexpected duration payload: %w", err)
	}
	return &n, nil
}

func (d *DucklingClient) ParseEmail(ctx context.Context, text string) (*string, error) {
	raw, _, err := d.query(ctx, text, "email")
	if err != nil || raw == nil {
		return nil, err
	}
	var addr string
	if err := json.Unmarshal(raw, &addr); err != nil {
		return nil, fmt.Errorf("duckling: unexpected email payload: %w", err)
	}
	return &addr, nil
}

// query posts the phrase to Duckling and returns the first entity's value
// payload plus the normalized span when present. A nil payload means the
// phrase carried no recognizable value of that dimension.
func (d *DucklingClient) query(ctx context.Context, text, dimension string) (json.RawMessage, *float64, error) {
	form := url.Values{}
	form.Set("text", text)
	form.Set("dims", fmt.Sprintf(`["%s"]`, dimension))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/parse", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("duckling: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("duckling: unexpected status %d", resp.StatusCode)
	}

	var entities []ducklingEntity
	if err := json.NewDecoder(resp.Body).Decode(&entities); err != nil {
		return nil, nil, fmt.Errorf("duckling: decode response: %w", err)
	}
	if len(entities) == 0 {
		d.logger.Debug("duckling found no entity",
			zap.String("dimension", dimension), zap.String("text", text))
		return nil, nil, nil
	}

	val := entities[0].Value
	var normalized *float64
	if val.Normalized != nil {
		normalized = &val.Normalized.Value
	}
	if len(val.Value) > 0 {
		return val.Value, normalized, nil
	}
	if len(val.Values) > 0 {
		return val.Values[0], normalized, nil
	}
	return nil, normalized, nil
}
