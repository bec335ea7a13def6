package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tailabs/mcp-shopify/internal/config"

	"github.com/sirupsen/logrus"
)

// APIError is returned for any non-2xx response from the Admin API. The
// message is the remote error payload verbatim when the response carried one,
// so callers see exactly what Shopify said.
type APIError struct {
	StatusCode int
	Payload    string
}

func (e *APIError) Error() string {
	if e.Payload != "" {
		return e.Payload
	}
	return fmt.Sprintf("HTTP %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Client is the shared Admin REST client. It is constructed once at startup
// from the immutable configuration and injected into every tool handler.
// It performs no retries and enforces no timeout beyond the underlying
// http.Client's.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient builds a client for https://{shop-domain}/admin/api/{version}.
// A shop domain that already carries a scheme is used as-is, which is how
// tests point the client at a local fake. A nil httpClient gets a default
// with the configured timeout.
func NewClient(cfg *config.Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPClientTimeout}
	}

	host := cfg.ShopDomain
	if host != "" && !strings.Contains(host, "://") {
		host = "https://" + host
	}

	return &Client{
		baseURL:    fmt.Sprintf("%s/admin/api/%s", strings.TrimRight(host, "/"), cfg.APIVersion),
		token:      cfg.AccessToken,
		httpClient: httpClient,
	}
}

// Get issues a GET against the resource, e.g. "orders" or
// "orders/123/fulfillments". rawQuery is appended as-is when non-empty.
func (c *Client) Get(ctx context.Context, resource, rawQuery string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, resource, rawQuery, nil)
}

// Post issues a POST with body serialized as JSON.
func (c *Client) Post(ctx context.Context, resource string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, resource, "", body)
}

// Put issues a PUT with body serialized as JSON.
func (c *Client) Put(ctx context.Context, resource string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, resource, "", body)
}

// Delete issues a DELETE against the single-resource endpoint. The response
// body is discarded; Shopify sends an empty object on successful deletes.
func (c *Client) Delete(ctx context.Context, resource string) error {
	_, err := c.do(ctx, http.MethodDelete, resource, "", nil)
	return err
}

func (c *Client) do(ctx context.Context, method, resource, rawQuery string, body any) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/%s.json", c.baseURL, resource)
	if rawQuery != "" {
		endpoint += "?" + rawQuery
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.token)

	logrus.WithFields(logrus.Fields{
		"method":   method,
		"resource": resource,
	}).Debug("Issuing Admin API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request execution failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Payload:    strings.TrimSpace(string(respBody)),
		}
	}

	return respBody, nil
}
