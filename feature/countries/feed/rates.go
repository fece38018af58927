package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"country-exchange/core/apperr"

	"go.uber.org/zap"
)

const ratesDetail = "Could not fetch data from Exchange Rate API"

// ratesPayload mirrors the open.er-api.com response envelope.
type ratesPayload struct {
	Result   string             `json:"result"`
	BaseCode string             `json:"base_code"`
	Rates    map[string]float64 `json:"rates"`
}

// RateClient fetches the currency-code to exchange-rate map from the rate feed.
type RateClient struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

// NewRateClient creates a rate client with the configured timeout.
func NewRateClient(cfg Config, logger *zap.Logger) *RateClient {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	return &RateClient{
		url:    cfg.RatesURL,
		client: &http.Client{Timeout: time.Duration(timeout) * time.Second},
		logger: logger,
	}
}

// Fetch retrieves the rate map. A payload whose result field is not "success"
// counts as a feed failure, same as any transport or decode error.
func (c *RateClient) Fetch(ctx context.Context) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, apperr.UpstreamUnavailable(ratesDetail, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("Exchange Rate API request failed", zap.Error(err))
		return nil, apperr.UpstreamUnavailable(ratesDetail, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("Exchange Rate API returned non-success status", zap.Int("status", resp.StatusCode))
		return nil, apperr.UpstreamUnavailable(ratesDetail, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var payload ratesPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperr.UpstreamUnavailable(ratesDetail, fmt.Errorf("decode rates payload: %w", err))
	}

	if payload.Result != "success" {
		c.logger.Error("Exchange Rate API reported failure", zap.String("result", payload.Result))
		return nil, apperr.UpstreamUnavailable(ratesDetail, fmt.Errorf("rate feed result %q", payload.Result))
	}

	c.logger.Info("Fetched exchange rates",
		zap.String("base", payload.BaseCode),
		zap.Int("count", len(payload.Rates)),
	)
	return payload.Rates, nil
}
