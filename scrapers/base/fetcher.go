package base

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/raushankrgupta/product-reconciler/utils"
)

// Fetcher loads storefront pages through escalating strategies: plain
// HTTP first, then headless Chrome, then a full Selenium browser.
// Search-results pages are bot-protected, so each strategy's output is
// run through a caller-supplied validator before being accepted.
type Fetcher struct {
	Client *http.Client
	Log    *utils.Logger
}

// NewFetcher creates a Fetcher with a browser-like HTTP client.
func NewFetcher(log *utils.Logger) *Fetcher {
	return &Fetcher{
		Log: log,
		Client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				ForceAttemptHTTP2:     false,
				TLSNextProto:          make(map[string]func(string, *tls.Conn) http.RoundTripper),
				MaxIdleConns:          100,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
	}
}

// FetchDocument tries each strategy in order until one yields a page
// the validator accepts.
func (f *Fetcher) FetchDocument(url string, valid func(*goquery.Document) bool) (*goquery.Document, error) {
	doc, err := f.FetchHTTP(url)
	if err == nil && valid(doc) {
		return doc, nil
	}
	if err != nil {
		f.Log.Warn("[fetcher] HTTP fetch failed for %s: %v", url, err)
	} else {
		f.Log.Warn("[fetcher] HTTP fetch returned blocked or empty page, escalating: %s", url)
	}

	doc, err = f.FetchChromeDP(url)
	if err == nil && valid(doc) {
		return doc, nil
	}
	if err != nil {
		f.Log.Warn("[fetcher] ChromeDP fetch failed for %s: %v", url, err)
	}

	doc, err = f.FetchSelenium(url)
	if err == nil && valid(doc) {
		return doc, nil
	}
	if err != nil {
		f.Log.Warn("[fetcher] Selenium fetch failed for %s: %v", url, err)
	}

	return nil, fmt.Errorf("all fetch strategies failed for %s", url)
}

// FetchHTTP loads the page with the plain HTTP client and browser
// headers.
func (f *Fetcher) FetchHTTP(url string) (*goquery.Document, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	req.Header.Set("Sec-Fetch-Dest", "document")
	req.Header.Set("Sec-Fetch-Mode", "navigate")
	req.Header.Set("Sec-Fetch-Site", "cross-site")
	req.Header.Set("Sec-Fetch-User", "?1")

	res, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code error: %d %s", res.StatusCode, res.Status)
	}

	return goquery.NewDocumentFromReader(res.Body)
}

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
