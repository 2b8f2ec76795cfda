package adapters

import (
	"fmt"
	"regexp"

	amazonapi "github.com/raushankrgupta/product-reconciler/apiclient/amazon"
	"github.com/raushankrgupta/product-reconciler/models"
	"github.com/raushankrgupta/product-reconciler/pricing"
)

// reASIN captures the path segment following /dp/ and before the next
// slash or query string.
var reASIN = regexp.MustCompile(`/dp/([^/?]+)`)

// FromAmazonAPI maps one Amazon search-API product into the canonical
// record. The original price defaults to the selling price when the
// API omits it, so the price <= originalPrice invariant holds
// trivially for undiscounted products.
func FromAmazonAPI(p amazonapi.Product) (models.Record, error) {
	if p.ASIN == "" {
		return models.Record{}, models.MissingField("amazon-api", "asin")
	}
	if p.ProductTitle == "" {
		return models.Record{}, models.MissingField("amazon-api", "product_title")
	}
	if p.ProductURL == "" {
		return models.Record{}, models.MissingField("amazon-api", "product_url")
	}

	price := pricing.NormalizeString(p.ProductPrice)
	original := price
	if p.ProductOriginalPrice != "" {
		original = pricing.NormalizeString(p.ProductOriginalPrice)
	}

	return models.Record{
		Source:          "amazon-api",
		Identifier:      p.ASIN,
		Title:           p.ProductTitle,
		Price:           price,
		OriginalPrice:   original,
		URL:             p.ProductURL,
		ImageURL:        p.ProductPhoto,
		Currency:        p.Currency,
		IsPrimeEligible: p.IsPrime,
		RawPrice:        p.ProductPrice,
	}, nil
}

// FromAmazonDOM maps one scraped Amazon search tile into the canonical
// record. The raw anchor carries referral query parameters the API URL
// never has, so the identifier is lifted out of the /dp/ segment and
// the URL rebuilt from the fixed template. Raw-string URL equality
// against the API would always fail otherwise.
func FromAmazonDOM(item models.SearchResult, site string) (models.Record, error) {
	if item.Name == "" {
		return models.Record{}, models.MissingField("amazon-dom", "name")
	}
	if item.Href == "" {
		return models.Record{}, models.MissingField("amazon-dom", "href")
	}

	m := reASIN.FindStringSubmatch(item.Href)
	if m == nil {
		return models.Record{}, models.MissingField("amazon-dom", "asin")
	}
	asin := m[1]

	return models.Record{
		Source:     "amazon-dom",
		Identifier: asin,
		Title:      item.Name,
		Price:      pricing.NormalizeString(item.RawPrice),
		URL:        fmt.Sprintf("https://%s/dp/%s", site, asin),
		Currency:   "INR",
		RawPrice:   item.RawPrice,
	}, nil
}
