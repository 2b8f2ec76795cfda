package flipkart

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/raushankrgupta/product-reconciler/utils"
)

const searchPage = `<!DOCTYPE html>
<html>
<body>
<div class="DOjaWF">
  <div class="_75nlfW">
    <a href="/titan-karishma-analog-watch/p/itm123">
      <div class="WKTcLC">Titan Karishma Analog Watch</div>
      <div class="Nx9bqj">₹1,835</div>
    </a>
  </div>
  <div class="_75nlfW">
    <a href="/banner-ad"><div class="WKTcLC"></div></a>
  </div>
  <div class="_75nlfW">
    <a href="/fastrack-analog-watch/p/itm456">
      <div class="WKTcLC">Fastrack Analog Watch</div>
      <div class="Nx9bqj">₹995</div>
    </a>
  </div>
</div>
</body>
</html>`

func TestScrapeSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "titan watch" {
			t.Errorf("search query = %q, want %q", got, "titan watch")
		}
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(searchPage))
	}))
	defer srv.Close()

	s := NewScraper(utils.NewLogger())
	s.BaseURL = srv.URL

	results, err := s.ScrapeSearch("titan watch")
	if err != nil {
		t.Fatalf("ScrapeSearch: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2 (nameless card must be skipped)", len(results))
	}
	if results[0].Name != "Titan Karishma Analog Watch" || results[0].RawPrice != "₹1,835" {
		t.Errorf("first result mis-parsed: %+v", results[0])
	}
	if want := srv.URL + "/titan-karishma-analog-watch/p/itm123"; results[0].Href != want {
		t.Errorf("href = %q, want %q", results[0].Href, want)
	}
}

func TestScrapeSearchEmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body><div class="DOjaWF"></div></body></html>`))
	}))
	defer srv.Close()

	s := NewScraper(utils.NewLogger())
	s.BaseURL = srv.URL

	if _, err := s.ScrapeSearch("titan watch"); err == nil {
		t.Fatal("expected error for a search page with no product cards")
	}
}
