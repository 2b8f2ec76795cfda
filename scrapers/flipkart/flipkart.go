package flipkart

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/raushankrgupta/product-reconciler/models"
	"github.com/raushankrgupta/product-reconciler/scrapers/base"
	"github.com/raushankrgupta/product-reconciler/utils"
)

const site = "www.flipkart.com"

// Scraper extracts product tiles from a Flipkart search-results page.
// Flipkart's class names are build artifacts and churn with releases;
// the selectors here match the current generation.
type Scraper struct {
	*base.Fetcher

	// BaseURL is overridable for tests against a local server.
	BaseURL string
}

func NewScraper(log *utils.Logger) *Scraper {
	return &Scraper{
		Fetcher: base.NewFetcher(log),
		BaseURL: "https://" + site,
	}
}

func (s *Scraper) Site() string {
	return site
}

// ScrapeSearch loads the search page for query and lifts name, raw
// price and tile link from every product card.
func (s *Scraper) ScrapeSearch(query string) ([]models.SearchResult, error) {
	searchURL := fmt.Sprintf("%s/search?q=%s", s.BaseURL, url.QueryEscape(query))

	doc, err := s.FetchDocument(searchURL, func(doc *goquery.Document) bool {
		return doc.Find(".DOjaWF").Length() > 0
	})
	if err != nil {
		return nil, err
	}

	var results []models.SearchResult
	doc.Find("._75nlfW").Each(func(i int, sel *goquery.Selection) {
		name := strings.TrimSpace(sel.Find(".WKTcLC").First().Text())
		price := strings.TrimSpace(sel.Find(".Nx9bqj").First().Text())
		href := sel.Find("a[href]").First().AttrOr("href", "")

		if name == "" || price == "" {
			return
		}

		if strings.HasPrefix(href, "/") {
			href = s.BaseURL + href
		}

		results = append(results, models.SearchResult{
			Name:     name,
			RawPrice: price,
			Href:     href,
		})
	})

	if len(results) == 0 {
		return nil, fmt.Errorf("no products found on search page for %q", query)
	}

	return results, nil
}
