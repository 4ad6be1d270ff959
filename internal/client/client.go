package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"qr-menu/internal/models"
)

// DefaultTimeout bounds every call; a call past it is cancelled and surfaced
// as ErrTimeout. No retry is attempted.
const DefaultTimeout = 10 * time.Second

// Client is a typed client for the menu API. Read calls return display-form
// items; admin calls return wire-form items.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client with the default timeout.
func New(baseURL string) *Client {
	return NewWithTimeout(baseURL, DefaultTimeout)
}

// NewWithTimeout creates a client with an explicit timeout.
func NewWithTimeout(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// DisplayMenu groups display items per category tab.
type DisplayMenu struct {
	Drinks   []models.DisplayMenuItem
	Foods    []models.DisplayMenuItem
	FoodSets []models.DisplayMenuItem
}

// GetMenu returns all active items in display form.
func (c *Client) GetMenu(ctx context.Context) ([]models.DisplayMenuItem, error) {
	var resp models.MenuResponse
	if err := c.do(ctx, http.MethodGet, "/api/menu", nil, &resp); err != nil {
		return nil, err
	}
	return TransformMenuItems(resp.Items), nil
}

// GetMenuByCategory returns active items of one category in display form.
func (c *Client) GetMenuByCategory(ctx context.Context, category models.Category) ([]models.DisplayMenuItem, error) {
	var resp models.MenuResponse
	path := "/api/menu/" + url.PathEscape(string(category))
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return TransformMenuItems(resp.Items), nil
}

// GetMenuSeparated returns the three display buckets.
func (c *Client) GetMenuSeparated(ctx context.Context) (*DisplayMenu, error) {
	var resp models.MenuByCategoryResponse
	if err := c.do(ctx, http.MethodGet, "/api/menu-separated", nil, &resp); err != nil {
		return nil, err
	}
	return &DisplayMenu{
		Drinks:   TransformMenuItems(resp.Drinks),
		Foods:    TransformMenuItems(resp.Foods),
		FoodSets: TransformMenuItems(resp.FoodSets),
	}, nil
}

// AddItem creates a menu item.
func (c *Client) AddItem(ctx context.Context, req *models.ItemRequest) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := c.do(ctx, http.MethodPost, "/api/items", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem fully replaces the editable fields of a menu item.
func (c *Client) UpdateItem(ctx context.Context, id int, req *models.ItemRequest) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/items/%d", id), req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem removes a menu item and returns the removed item.
func (c *Client) DeleteItem(ctx context.Context, id int) (*models.MenuItem, error) {
	var resp models.DeleteItemResponse
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/items/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Item, nil
}

// Test calls the diagnostic endpoint.
func (c *Client) Test(ctx context.Context) (*models.TestResponse, error) {
	var resp models.TestResponse
	if err := c.do(ctx, http.MethodGet, "/api/test", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// do performs one request and unwraps the enveloped response into out.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return fmt.Errorf("%w after %v", ErrTimeout, c.http.Timeout)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	var env models.Envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode >= http.StatusBadRequest {
		message := env.Message
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: message}
	}
	if decodeErr != nil {
		return fmt.Errorf("decode response: %w", decodeErr)
	}

	return Unwrap(&env, out)
}
