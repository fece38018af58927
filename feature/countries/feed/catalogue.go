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

const catalogueDetail = "Could not fetch data from Countries API"

// Currency is one entry of a catalogue country's currency list.
type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// CatalogueCountry is a single country as reported by the catalogue feed.
type CatalogueCountry struct {
	Name       string     `json:"name"`
	Capital    string     `json:"capital"`
	Region     string     `json:"region"`
	Population int64      `json:"population"`
	Flag       string     `json:"flag"`
	Currencies []Currency `json:"currencies"`
}

// CatalogueClient fetches the full country list from the catalogue feed.
type CatalogueClient struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

// NewCatalogueClient creates a catalogue client with the configured timeout.
func NewCatalogueClient(cfg Config, logger *zap.Logger) *CatalogueClient {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	return &CatalogueClient{
		url:    cfg.CountriesURL,
		client: &http.Client{Timeout: time.Duration(timeout) * time.Second},
		logger: logger,
	}
}

// Fetch retrieves the catalogue. Any transport, status, or decode failure is
// reported as UpstreamUnavailable so a refresh run aborts as a unit.
func (c *CatalogueClient) Fetch(ctx context.Context) ([]CatalogueCountry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, apperr.UpstreamUnavailable(catalogueDetail, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("Countries API request failed", zap.Error(err))
		return nil, apperr.UpstreamUnavailable(catalogueDetail, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("Countries API returned non-success status", zap.Int("status", resp.StatusCode))
		return nil, apperr.UpstreamUnavailable(catalogueDetail, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var countries []CatalogueCountry
	if err := json.NewDecoder(resp.Body).Decode(&countries); err != nil {
		return nil, apperr.UpstreamUnavailable(catalogueDetail, fmt.Errorf("decode catalogue payload: %w", err))
	}

	c.logger.Info("Fetched country catalogue", zap.Int("count", len(countries)))
	return countries, nil
}
