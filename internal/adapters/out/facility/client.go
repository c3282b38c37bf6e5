// Package facility provides the HTTP client for the facility master-data
// service. Completion uses it to stamp the shipping facility onto the final
// shipment view; a lookup failure never blocks completion.
package facility

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

// Client is the HTTP wrapper for the facility service's REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new facility service HTTP client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// GetFacility resolves the facility behind a location code via
// GET /v1/facilities/{code}.
func (c *Client) GetFacility(ctx context.Context, locationCode string) (ports.Facility, error) {
	endpoint := fmt.Sprintf("%s/v1/facilities/%s", c.baseURL, locationCode)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ports.Facility{}, fmt.Errorf("failed to build facility request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return ports.Facility{}, fmt.Errorf("failed to call facility service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ports.Facility{}, errs.NewObjectNotFoundError("facility", locationCode)
	}
	if resp.StatusCode != http.StatusOK {
		return ports.Facility{}, fmt.Errorf("facility service error %d for location %s",
			resp.StatusCode, locationCode)
	}

	var result ports.Facility
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return ports.Facility{}, fmt.Errorf("failed to decode facility response: %w", err)
	}
	return result, nil
}
