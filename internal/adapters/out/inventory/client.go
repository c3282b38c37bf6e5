// Package inventory provides the HTTP client for the inventory authority.
// The authority owns unit eligibility: every pack and every completion
// revalidation goes through its validation endpoint.
package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"shipping/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// Client is the HTTP wrapper for the inventory authority's REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new inventory authority HTTP client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Validate asks the authority whether the scanned unit may ship from the
// given location via GET /v1/inventory/validations. Transport failures and
// non-200 answers are reported as ports.ErrInventoryServiceUnavailable so the
// packing flow can degrade to its SYSTEM notification.
func (c *Client) Validate(
	ctx context.Context,
	unitNumber, productCode, locationCode string,
) (ports.InventoryValidation, error) {
	params := url.Values{}
	params.Set("unitNumber", unitNumber)
	params.Set("productCode", productCode)
	params.Set("locationCode", locationCode)
	endpoint := fmt.Sprintf("%s/v1/inventory/validations?%s", c.baseURL, params.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ports.InventoryValidation{}, fmt.Errorf("failed to build inventory validation request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return ports.InventoryValidation{}, fmt.Errorf("%w: %v", ports.ErrInventoryServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.InventoryValidation{},
			fmt.Errorf("%w: status %d", ports.ErrInventoryServiceUnavailable, resp.StatusCode)
	}

	var body struct {
		Inventory     *ports.InventoryRecord        `json:"inventory"`
		Notifications []ports.InventoryNotification `json:"notifications"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ports.InventoryValidation{}, fmt.Errorf("failed to decode inventory validation response: %w", err)
	}

	return ports.InventoryValidation{
		Record:        body.Inventory,
		Notifications: body.Notifications,
	}, nil
}
