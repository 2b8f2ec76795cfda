package adapters

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	flipkartapi "github.com/raushankrgupta/product-reconciler/apiclient/flipkart"
	"github.com/raushankrgupta/product-reconciler/models"
)

func TestFromFlipkartAPI(t *testing.T) {
	p := flipkartapi.Product{
		PID:        "WATGZMFKHHZDEYFP",
		Brand:      "Titan",
		Title:      "Titan Karishma Analog Watch",
		Price:      1835,
		URL:        "https://www.flipkart.com/titan-karishma-analog-watch/p/itm123",
		Images:     []string{"https://rukminim2.flixcart.com/image/watch.jpg"},
		Highlights: []string{"Water Resistant", "Leather Strap"},
		Stock:      "IN_STOCK",
	}

	rec, err := FromFlipkartAPI(p)
	require.NoError(t, err)

	assert.Equal(t, "flipkart-api", rec.Source)
	assert.Equal(t, "WATGZMFKHHZDEYFP", rec.Identifier)
	assert.Equal(t, 1835.0, rec.Price)
	assert.Equal(t, "INR", rec.Currency)
	assert.Equal(t, models.InStock, rec.Availability)
	assert.Len(t, rec.Highlights, 2)
	assert.Len(t, rec.Images, 1)
}

func TestFromFlipkartAPIAvailability(t *testing.T) {
	tests := []struct {
		stock string
		want  models.Availability
	}{
		{"IN_STOCK", models.InStock},
		{"OUT_OF_STOCK", models.OutOfStock},
		{"COMING_SOON", models.Unknown},
		{"", models.Unknown},
	}

	for _, tt := range tests {
		p := flipkartapi.Product{
			PID:   "WATGZMFKHHZDEYFP",
			Title: "Titan Watch",
			URL:   "https://www.flipkart.com/p/itm123",
			Stock: tt.stock,
		}
		rec, err := FromFlipkartAPI(p)
		require.NoError(t, err)
		assert.Equal(t, tt.want, rec.Availability, "stock %q", tt.stock)
	}
}

func TestFromFlipkartAPIMissingFields(t *testing.T) {
	base := flipkartapi.Product{
		PID:   "WATGZMFKHHZDEYFP",
		Title: "Titan Watch",
		URL:   "https://www.flipkart.com/p/itm123",
	}

	tests := []struct {
		name   string
		mutate func(p *flipkartapi.Product)
	}{
		{"no pid", func(p *flipkartapi.Product) { p.PID = "" }},
		{"no title", func(p *flipkartapi.Product) { p.Title = "" }},
		{"no url", func(p *flipkartapi.Product) { p.URL = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			tt.mutate(&p)
			_, err := FromFlipkartAPI(p)
			require.Error(t, err)
			assert.True(t, errors.Is(err, models.ErrMissingField))
		})
	}
}

func TestFromFlipkartDOM(t *testing.T) {
	rec, err := FromFlipkartDOM(models.SearchResult{
		Name:     "Titan Karishma Analog Watch",
		RawPrice: "₹1,835",
		Href:     "https://www.flipkart.com/titan-karishma-analog-watch/p/itm123",
	})
	require.NoError(t, err)

	assert.Equal(t, "flipkart-dom", rec.Source)
	assert.Empty(t, rec.Identifier)
	assert.Equal(t, 1835.0, rec.Price)

	_, err = FromFlipkartDOM(models.SearchResult{RawPrice: "₹1,835"})
	assert.True(t, errors.Is(err, models.ErrMissingField))
}

func TestFlipkartAPICollection(t *testing.T) {
	resp := &flipkartapi.SearchResponse{
		TotalPages:     5,
		ProductsInPage: 2,
		Products: []flipkartapi.Product{
			{PID: "A1", Title: "Titan Watch", URL: "https://www.flipkart.com/p/a1", Stock: "IN_STOCK"},
			{Title: "Broken tile"},
			{PID: "A2", Title: "Fastrack Watch", URL: "https://www.flipkart.com/p/a2", Stock: "IN_STOCK"},
		},
	}

	col, errs := FlipkartAPICollection(resp, "titan watch")
	assert.Len(t, errs, 1)
	assert.Len(t, col.Records, 2)
	assert.Equal(t, "flipkart-api", col.Source)
	assert.Equal(t, 2, col.ReportedCount)
}
