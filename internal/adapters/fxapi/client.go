// Package fxapi implements the external rate provider against a
// frankfurter-style HTTP rate service: GET {base}/{date}?base={ccy}&symbols=THB.
package fxapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/siamsail/charterdesk/internal/core/domain"
	portsprov "github.com/siamsail/charterdesk/internal/core/ports/providers"
)

const sourceName = "fxapi"

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a rate provider against the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Ensure Client implements portsprov.RateProvider
var _ portsprov.RateProvider = (*Client)(nil)

// rateResponse keeps the rate as a json.Number so no float conversion
// happens before the decimal parse.
type rateResponse struct {
	Rates map[string]json.Number `json:"rates"`
}

// FetchRate looks up the THB rate for one currency on one date.
func (c *Client) FetchRate(ctx context.Context, currencyCode string, date time.Time) (*portsprov.FetchedRate, error) {
	endpoint := fmt.Sprintf("%s/%s?%s", c.baseURL, date.Format("2006-01-02"), url.Values{
		"base":    []string{currencyCode},
		"symbols": []string{domain.ReportingCurrency},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rate request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("rate service returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed rateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode rate response: %w", err)
	}
	raw, ok := parsed.Rates[domain.ReportingCurrency]
	if !ok {
		return nil, fmt.Errorf("rate response missing %s for %s", domain.ReportingCurrency, currencyCode)
	}
	rate, err := decimal.NewFromString(raw.String())
	if err != nil {
		return nil, fmt.Errorf("failed to parse rate %q: %w", raw.String(), err)
	}

	return &portsprov.FetchedRate{Rate: rate, Source: sourceName}, nil
}
