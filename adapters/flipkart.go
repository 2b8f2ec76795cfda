package adapters

import (
	flipkartapi "github.com/raushankrgupta/product-reconciler/apiclient/flipkart"
	"github.com/raushankrgupta/product-reconciler/models"
	"github.com/raushankrgupta/product-reconciler/pricing"
)

// FromFlipkartAPI maps one Flipkart search-API product into the
// canonical record. The price is already numeric upstream; it is still
// routed through the normalizer so every record takes the same path.
func FromFlipkartAPI(p flipkartapi.Product) (models.Record, error) {
	if p.PID == "" {
		return models.Record{}, models.MissingField("flipkart-api", "pid")
	}
	if p.Title == "" {
		return models.Record{}, models.MissingField("flipkart-api", "title")
	}
	if p.URL == "" {
		return models.Record{}, models.MissingField("flipkart-api", "url")
	}

	return models.Record{
		Source:        "flipkart-api",
		Identifier:    p.PID,
		Title:         p.Title,
		Price:         pricing.Normalize(p.Price),
		OriginalPrice: pricing.Normalize(p.Price),
		URL:           p.URL,
		Currency:      "INR",
		Availability:  availability(p.Stock),
		Highlights:    p.Highlights,
		Images:        p.Images,
	}, nil
}

// FromFlipkartDOM maps one scraped Flipkart search tile. The search
// page exposes only name, price and the tile link, so the resulting
// record has no identifier and is usable for validation but not for
// identifier reconciliation.
func FromFlipkartDOM(item models.SearchResult) (models.Record, error) {
	if item.Name == "" {
		return models.Record{}, models.MissingField("flipkart-dom", "name")
	}

	return models.Record{
		Source:   "flipkart-dom",
		Title:    item.Name,
		Price:    pricing.NormalizeString(item.RawPrice),
		URL:      item.Href,
		Currency: "INR",
		RawPrice: item.RawPrice,
	}, nil
}

func availability(stock string) models.Availability {
	switch stock {
	case "IN_STOCK":
		return models.InStock
	case "OUT_OF_STOCK":
		return models.OutOfStock
	default:
		return models.Unknown
	}
}
