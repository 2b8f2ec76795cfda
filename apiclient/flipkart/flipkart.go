package flipkart

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/raushankrgupta/product-reconciler/apiclient"
	"github.com/raushankrgupta/product-reconciler/config"
	"github.com/raushankrgupta/product-reconciler/models"
)

// Product mirrors one entry of the Flipkart search API. Unlike Amazon,
// the price is already numeric.
type Product struct {
	PID        string   `json:"pid"`
	Brand      string   `json:"brand"`
	Title      string   `json:"title"`
	Price      float64  `json:"price"`
	URL        string   `json:"url"`
	Images     []string `json:"images"`
	Highlights []string `json:"highlights"`
	Stock      string   `json:"stock"`
}

// SearchResponse is the full Flipkart search body.
type SearchResponse struct {
	TotalPages     int       `json:"totalPages"`
	ProductsInPage int       `json:"productsInPage"`
	Products       []Product `json:"products"`
}

// Client wraps the shared HTTP client with the Flipkart endpoint config.
type Client struct {
	api *apiclient.Client
	cfg config.SourceAPI
}

func NewClient(api *apiclient.Client, cfg config.SourceAPI) *Client {
	return &Client{api: api, cfg: cfg}
}

// Search runs the configured product query with the same status
// mapping as the Amazon client: 429 → ErrRateLimited, other non-200 →
// UpstreamError with the raw body.
func (c *Client) Search(ctx context.Context) (*SearchResponse, *apiclient.Response, error) {
	headers := map[string]string{
		"x-rapidapi-host": c.cfg.Host,
		"x-rapidapi-key":  c.cfg.Key,
	}

	res, err := c.api.Get(ctx, c.cfg.Endpoint, c.cfg.QueryParams, headers)
	if err != nil {
		return nil, nil, err
	}

	switch {
	case res.StatusCode == http.StatusTooManyRequests:
		return nil, res, models.ErrRateLimited
	case res.StatusCode != http.StatusOK:
		return nil, res, &models.UpstreamError{StatusCode: res.StatusCode, Body: string(res.Body)}
	}

	var body SearchResponse
	if err := json.Unmarshal(res.Body, &body); err != nil {
		return nil, res, fmt.Errorf("decode flipkart search response: %w", err)
	}

	return &body, res, nil
}
