// Package reservoir is the JSON client for the Reservoir recommendation API,
// which turns a business profile into ranked automation opportunities. Errors
// are returned to the caller so the fallback to the static opportunity list
// stays an explicit branch in the report layer.
package reservoir

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/model"
)

// Client fetches automation recommendations for a business profile.
type Client interface {
	Recommendations(ctx context.Context, profile model.BusinessProfile) ([]model.Opportunity, error)
}

// ClientOption configures the HTTP client.
type ClientOption func(*httpClient)

// WithHTTPClient substitutes the underlying http.Client (used by tests).
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *httpClient) { c.http = hc }
}

// httpClient implements Client against the hosted recommendation endpoint.
type httpClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a recommendation API client. A single request timeout is
// the only resilience applied; there is no retry.
func NewClient(baseURL, apiKey string, opts ...ClientOption) Client {
	c := &httpClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// recommendationResponse is the wire shape of the API reply.
type recommendationResponse struct {
	Opportunities []model.Opportunity `json:"opportunities"`
}

func (c *httpClient) Recommendations(ctx context.Context, profile model.BusinessProfile) ([]model.Opportunity, error) {
	body, err := json.Marshal(profile)
	if err != nil {
		return nil, eris.Wrap(err, "reservoir: marshal profile")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/recommendations", bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "reservoir: build request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "reservoir: request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, eris.New(fmt.Sprintf("reservoir: unexpected status %d", resp.StatusCode))
	}

	var decoded recommendationResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, eris.Wrap(err, "reservoir: decode response")
	}

	zap.L().Debug("reservoir: recommendations fetched",
		zap.Int("count", len(decoded.Opportunities)),
	)
	return decoded.Opportunities, nil
}
