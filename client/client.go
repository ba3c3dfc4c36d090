// Package client is the editor's bridge to the design API. It owns the wire
// contract (save, load, list, delete, base product, orders) and converts
// transport and server failures into the error taxonomy the editor recovers
// from, so no API failure ever propagates into the interaction engine.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"garment-studio/core"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// New creates a client for the design API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken installs the bearer identity for authenticated calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Authenticated reports whether a bearer identity is present.
func (c *Client) Authenticated() bool {
	return c.token != ""
}

type (
	designResponse struct {
		Message string             `json:"message,omitempty"`
		Design  *core.DesignRecord `json:"design"`
	}

	designListResponse struct {
		Designs []core.DesignRecord `json:"designs"`
	}

	productResponse struct {
		Product *core.Product `json:"product"`
	}

	orderResponse struct {
		Message string      `json:"message,omitempty"`
		Order   *core.Order `json:"order"`
	}

	messageResponse struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
)

// CreateDesign persists the current document as a new server-side record.
func (c *Client) CreateDesign(ctx context.Context, payload core.DesignPayload) (*core.DesignRecord, error) {
	var resp designResponse
	if err := c.do(ctx, http.MethodPost, "/api/custom-designs", payload, &resp, true); err != nil {
		return nil, err
	}
	return resp.Design, nil
}

// ListDesigns returns the caller's saved designs, newest first.
func (c *Client) ListDesigns(ctx context.Context) ([]core.DesignRecord, error) {
	var resp designListResponse
	if err := c.do(ctx, http.MethodGet, "/api/custom-designs", nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.Designs, nil
}

// GetDesign fetches one saved design by id.
func (c *Client) GetDesign(ctx context.Context, id string) (*core.DesignRecord, error) {
	var resp designResponse
	if err := c.do(ctx, http.MethodGet, "/api/custom-designs/"+id, nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.Design, nil
}

// UpdateDesign overwrites a saved design from the given payload.
func (c *Client) UpdateDesign(ctx context.Context, id string, payload core.DesignPayload) (*core.DesignRecord, error) {
	var resp designResponse
	if err := c.do(ctx, http.MethodPut, "/api/custom-designs/"+id, payload, &resp, true); err != nil {
		return nil, err
	}
	return resp.Design, nil
}

// DeleteDesign removes a saved design. Deleting an already-deleted design is
// treated as success, so the operation is idempotent from the caller's side.
func (c *Client) DeleteDesign(ctx context.Context, id string) error {
	err := c.do(ctx, http.MethodDelete, "/api/custom-designs/"+id, nil, nil, true)
	var apiErr *core.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return nil
	}
	return err
}

// BaseProduct fetches the base custom garment product. No identity required.
func (c *Client) BaseProduct(ctx context.Context) (*core.Product, error) {
	var resp productResponse
	err := c.do(ctx, http.MethodGet, "/api/custom-designs/base-product", nil, &resp, false)
	var apiErr *core.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return nil, core.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return resp.Product, nil
}

// CreateOrder submits an order with the given line items.
func (c *Client) CreateOrder(ctx context.Context, items []core.CartItem, total float64) (*core.Order, error) {
	var resp orderResponse
	body := core.Order{Items: items, Total: total}
	if err := c.do(ctx, http.MethodPost, "/api/orders", body, &resp, true); err != nil {
		return nil, err
	}
	return resp.Order, nil
}

// do runs one request against the API. Calls that need an identity are
// refused locally, with no network traffic, when no token is set.
func (c *Client) do(ctx context.Context, method, path string, body, out any, needsAuth bool) error {
	if needsAuth && !c.Authenticated() {
		return core.ErrUnauthenticated
	}

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("design API unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var msg messageResponse
		_ = json.NewDecoder(resp.Body).Decode(&msg)
		message := msg.Message
		if message == "" {
			message = msg.Error
		}
		if message == "" {
			message = resp.Status
		}
		return &core.APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
