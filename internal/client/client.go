// Package client is the HTTP client of the storefront API, used by the
// terminal storefront and as the feed controller's page fetcher.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/JoseAngelVirgenEslava/proyecto/internal/feed"
	"github.com/JoseAngelVirgenEslava/proyecto/internal/models"
)

// Client talks to a running storefront server.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the API at baseURL (e.g. "http://localhost:8080").
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// ProductPage mirrors the catalog query response envelope.
type ProductPage struct {
	Items       []models.Product `json:"items"`
	Total       int              `json:"total"`
	CurrentPage int              `json:"currentPage"`
	Limit       int              `json:"limit"`
}

type errorResponse struct {
	Message string   `json:"message"`
	Details string   `json:"details,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// FetchPage implements feed.Fetcher over GET /api/product.
func (c *Client) FetchPage(ctx context.Context, page, pageSize int, f feed.Filter) ([]models.Product, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(pageSize))
	if f.Category != "" && f.Category != "all" {
		params.Set("category", f.Category)
	}
	if f.SortBy != "" {
		params.Set("sortBy", f.SortBy)
	}

	var result ProductPage
	if err := c.getJSON(ctx, "/api/product?"+params.Encode(), &result); err != nil {
		return nil, err
	}
	return result.Items, nil
}

// Categories returns the distinct category tags of the catalog.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var result struct {
		Categories []string `json:"categories"`
	}
	if err := c.getJSON(ctx, "/api/categories", &result); err != nil {
		return nil, err
	}
	return result.Categories, nil
}

// Product fetches the full record behind a product identity.
func (c *Client) Product(ctx context.Context, id string) (*models.Product, error) {
	var result models.Product
	if err := c.getJSON(ctx, "/api/product/"+url.PathEscape(id), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Search looks up a product by name. A nil product means no match.
func (c *Client) Search(ctx context.Context, name string) (*models.Product, error) {
	var result struct {
		Product *models.Product `json:"product"`
	}
	if err := c.getJSON(ctx, "/api/search?name="+url.QueryEscape(name), &result); err != nil {
		return nil, err
	}
	return result.Product, nil
}

// Checkout submits an order. A non-nil lineErrors slice means the server
// rejected one or more lines; the caller must keep its cart in that case.
func (c *Client) Checkout(ctx context.Context, order models.OrderRequest) (*models.Confirmation, []string, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/checkout", bytes.NewReader(body))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var conf models.Confirmation
		if err := json.NewDecoder(resp.Body).Decode(&conf); err != nil {
			return nil, nil, fmt.Errorf("decode confirmation: %w", err)
		}
		return &conf, nil, nil
	case http.StatusBadRequest:
		var errResp errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
			return nil, nil, fmt.Errorf("decode checkout errors: %w", err)
		}
		if len(errResp.Errors) > 0 {
			return nil, errResp.Errors, nil
		}
		return nil, []string{errResp.Message}, nil
	default:
		return nil, nil, fmt.Errorf("checkout failed: status %d", resp.StatusCode)
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.Message != "" {
			return fmt.Errorf("%s: %s (status %d)", path, errResp.Message, resp.StatusCode)
		}
		return fmt.Errorf("%s: status %d", path, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
