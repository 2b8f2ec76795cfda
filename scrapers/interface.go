package scrapers

import "github.com/raushankrgupta/product-reconciler/models"

// SearchScraper scrapes a storefront's search-results page for a query.
type SearchScraper interface {
	// Site returns the storefront host this scraper targets.
	Site() string
	// ScrapeSearch fetches the search page for query and extracts
	// every product tile found.
	ScrapeSearch(query string) ([]models.SearchResult, error)
}
