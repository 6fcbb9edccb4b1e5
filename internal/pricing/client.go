package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// Client looks up current store prices for an item name. The API is a plain
// GET returning {"name": ..., "price": ...}; transient failures are retried
// by the transport.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// StatusError captures non-2xx responses from the price API.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("price lookup failed: status %d", e.StatusCode)
}

func NewClient(endpoint, apiKey string) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.HTTPClient.Timeout = 10 * time.Second
	retryClient.Logger = nil

	return &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: retryClient.StandardClient(),
	}
}

func (c *Client) LookupPrice(ctx context.Context, name string) (float64, error) {
	u := fmt.Sprintf("%s/prices?item=%s", c.endpoint, url.QueryEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, &StatusError{StatusCode: resp.StatusCode}
	}

	var quote struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}
	return quote.Price, nil
}
