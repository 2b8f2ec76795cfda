package scenarios

import (
	"context"
	"fmt"

	"github.com/raushankrgupta/product-reconciler/adapters"
	"github.com/raushankrgupta/product-reconciler/models"
	"github.com/raushankrgupta/product-reconciler/reconcile"
	"github.com/raushankrgupta/product-reconciler/report"
)

// FrontendBackendValidation scrapes the Amazon search page, picks the
// configured result, and cross-checks it against the first product the
// Amazon API returns for the same query: identifier, canonical URL and
// normalized price must all agree.
func FrontendBackendValidation(ctx context.Context, d *Deps) *models.Outcome {
	o := models.NewOutcome("frontend_backend_validation")

	items, err := d.Scraper.ScrapeSearch(d.Query)
	if err != nil {
		d.Log.Error("[frontend_backend_validation] scrape failed: %v", err)
		return o.Errored(err.Error())
	}

	if len(items) <= d.FrontendProductIndex {
		return o.Errored(fmt.Sprintf("frontend returned %d products, need index %d",
			len(items), d.FrontendProductIndex))
	}

	frontend, err := adapters.FromAmazonDOM(items[d.FrontendProductIndex], d.AmazonSite)
	if err != nil {
		// Structural gap in the scraped tile; dropping it would
		// compare the wrong product, so the scenario aborts.
		return o.Errored(err.Error())
	}

	body, _, err := d.Amazon.Search(ctx)
	if err != nil {
		return abort(o, d.Log, err)
	}

	if len(body.Data.Products) == 0 {
		return o.Errored("no products found in the API response")
	}

	backend, err := adapters.FromAmazonAPI(body.Data.Products[0])
	if err != nil {
		return o.Errored(err.Error())
	}

	result := reconcile.Reconcile(frontend, backend)

	o.Check("asin_match", result.IdentifierMatch.Matched,
		fmt.Sprintf("frontend %q vs backend %q", frontend.Identifier, backend.Identifier))
	o.Check("url_match", result.URLMatch.Matched,
		fmt.Sprintf("frontend %q vs backend %q", frontend.URL, backend.URL))
	o.Check("price_match", result.PriceMatch.Matched,
		fmt.Sprintf("frontend %v vs backend %v", frontend.Price, backend.Price))

	path, err := d.Emitter.Emit("frontend_backend_validation.json", report.ValidationReport{
		FrontendProduct: frontend,
		BackendProduct:  backend,
		Result:          result,
	})
	if o.Check("validation_report_saved", err == nil, errDetail(err)) {
		d.Log.Info("[frontend_backend_validation] report saved to %s", path)
	}

	return o.Finish()
}
