package amazon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/raushankrgupta/product-reconciler/apiclient"
	"github.com/raushankrgupta/product-reconciler/config"
	"github.com/raushankrgupta/product-reconciler/models"
)

// Product mirrors one entry of the Amazon search API, field names
// bit-exact with the upstream contract. Prices arrive as strings
// carrying the currency symbol.
type Product struct {
	ASIN                 string `json:"asin"`
	ProductTitle         string `json:"product_title"`
	ProductPrice         string `json:"product_price"`
	ProductOriginalPrice string `json:"product_original_price,omitempty"`
	ProductURL           string `json:"product_url"`
	ProductPhoto         string `json:"product_photo"`
	Currency             string `json:"currency"`
	IsPrime              bool   `json:"is_prime"`
}

// SearchData is the payload under the top-level "data" key.
type SearchData struct {
	TotalProducts int       `json:"total_products"`
	Products      []Product `json:"products"`
}

// SearchResponse is the full Amazon search body. Status is left
// untyped because the upstream sends it as a number or a string
// depending on the plan tier.
type SearchResponse struct {
	Status    any        `json:"status"`
	RequestID string     `json:"request_id"`
	Data      SearchData `json:"data"`
}

// Client wraps the shared HTTP client with the Amazon endpoint config.
type Client struct {
	api *apiclient.Client
	cfg config.SourceAPI
}

func NewClient(api *apiclient.Client, cfg config.SourceAPI) *Client {
	return &Client{api: api, cfg: cfg}
}

// Search runs the configured product query. A 429 maps to
// models.ErrRateLimited; any other non-200 becomes an UpstreamError
// carrying the raw body. The transport response is returned alongside
// the decoded body so callers can assert on status and latency.
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
		return nil, res, fmt.Errorf("decode amazon search response: %w", err)
	}

	return &body, res, nil
}
