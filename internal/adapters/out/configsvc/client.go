// Package configsvc provides the HTTP client for the configuration service
// holding the packing workflow's process toggles and discard reason lists.
package configsvc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"shipping/internal/core/ports"
)

// Configuration keys owned by the shipping workflow.
const (
	keyVisualInspection   = "SHIPPING_VISUAL_INSPECTION"
	keySecondVerification = "SHIPPING_SECOND_VERIFICATION"
	keyCheckDigit         = "SHIPPING_CHECK_DIGIT"

	discardCategoryVisualInspection = "VISUAL_INSPECTION"
)

const defaultTimeout = 10 * time.Second

// Client is the HTTP wrapper for the configuration service's REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new configuration service HTTP client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// VisualInspectionActive reports whether packed units must pass a visual
// inspection gate.
func (c *Client) VisualInspectionActive(ctx context.Context) (bool, error) {
	return c.flag(ctx, keyVisualInspection)
}

// SecondVerificationActive reports whether packed units require a second scan
// before the shipment can complete.
func (c *Client) SecondVerificationActive(ctx context.Context) (bool, error) {
	return c.flag(ctx, keySecondVerification)
}

// CheckDigitActive reports whether manually keyed unit numbers require a
// check digit.
func (c *Client) CheckDigitActive(ctx context.Context) (bool, error) {
	return c.flag(ctx, keyCheckDigit)
}

// VisualInspectionDiscardReasons lists the discard reasons offered when a
// unit fails visual inspection, via GET /v1/discard-reasons.
func (c *Client) VisualInspectionDiscardReasons(ctx context.Context) ([]ports.DiscardReason, error) {
	params := url.Values{}
	params.Set("category", discardCategoryVisualInspection)
	endpoint := fmt.Sprintf("%s/v1/discard-reasons?%s", c.baseURL, params.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build discard reasons request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call configuration service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("configuration service error %d for discard reasons", resp.StatusCode)
	}

	var reasons []ports.DiscardReason
	if err := json.NewDecoder(resp.Body).Decode(&reasons); err != nil {
		return nil, fmt.Errorf("failed to decode discard reasons response: %w", err)
	}
	return reasons, nil
}

// flag reads one boolean toggle via GET /v1/configurations/{key}.
func (c *Client) flag(ctx context.Context, key string) (bool, error) {
	endpoint := fmt.Sprintf("%s/v1/configurations/%s", c.baseURL, key)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build configuration request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return false, fmt.Errorf("failed to call configuration service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("configuration service error %d for key %s", resp.StatusCode, key)
	}

	var body struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("failed to decode configuration response: %w", err)
	}

	active, err := strconv.ParseBool(body.Value)
	if err != nil {
		return false, fmt.Errorf("configuration key %s holds a non-boolean value %q", key, body.Value)
	}
	return active, nil
}
