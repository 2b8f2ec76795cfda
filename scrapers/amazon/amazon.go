package amazon

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/raushankrgupta/product-reconciler/models"
	"github.com/raushankrgupta/product-reconciler/scrapers/base"
	"github.com/raushankrgupta/product-reconciler/utils"
)

// Scraper extracts product tiles from an Amazon search-results page.
type Scraper struct {
	*base.Fetcher
	site string

	// BaseURL is overridable for tests against a local server.
	BaseURL string
}

func NewScraper(log *utils.Logger, site string) *Scraper {
	return &Scraper{
		Fetcher: base.NewFetcher(log),
		site:    site,
		BaseURL: "https://" + site,
	}
}

func (s *Scraper) Site() string {
	return s.site
}

// ScrapeSearch loads the search page for query and lifts name, raw
// price and href from every result tile. Tiles missing any of the
// three are ad slots or spacers and are skipped.
func (s *Scraper) ScrapeSearch(query string) ([]models.SearchResult, error) {
	searchURL := fmt.Sprintf("%s/s?k=%s", s.BaseURL, url.QueryEscape(query))

	doc, err := s.FetchDocument(searchURL, func(doc *goquery.Document) bool {
		return doc.Find(".s-main-slot").Length() > 0
	})
	if err != nil {
		return nil, err
	}

	var results []models.SearchResult
	doc.Find(".s-main-slot .s-result-item").Each(func(i int, sel *goquery.Selection) {
		name := strings.TrimSpace(sel.Find("h2 a span").First().Text())
		price := strings.TrimSpace(sel.Find(".a-price .a-offscreen").First().Text())
		href := sel.Find("h2 a").First().AttrOr("href", "")

		if name == "" || price == "" || href == "" {
			return
		}

		// Result links are site-relative.
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
