package scrapers

import (
	"fmt"
	"strings"

	"github.com/raushankrgupta/product-reconciler/scrapers/amazon"
	"github.com/raushankrgupta/product-reconciler/scrapers/flipkart"
	"github.com/raushankrgupta/product-reconciler/utils"
)

// ForSite returns the scraper registered for the given storefront host.
func ForSite(site string, log *utils.Logger) (SearchScraper, error) {
	switch {
	case strings.Contains(site, "amazon"):
		return amazon.NewScraper(log, site), nil
	case strings.Contains(site, "flipkart"):
		return flipkart.NewScraper(log), nil
	}
	return nil, fmt.Errorf("no scraper registered for site: %s", site)
}
