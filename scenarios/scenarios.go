// Package scenarios contains the executable test scenarios of the
// suite. Each scenario fetches what it needs, runs assertions and
// validation rules, writes its artifact, and reports a single Outcome.
// Scenarios run sequentially; a rate-limited or failed fetch aborts
// only the scenario it happened in.
package scenarios

import (
	"errors"
	"time"

	amazonapi "github.com/raushankrgupta/product-reconciler/apiclient/amazon"
	flipkartapi "github.com/raushankrgupta/product-reconciler/apiclient/flipkart"
	"github.com/raushankrgupta/product-reconciler/models"
	"github.com/raushankrgupta/product-reconciler/report"
	"github.com/raushankrgupta/product-reconciler/scrapers"
	"github.com/raushankrgupta/product-reconciler/utils"
)

// Deps bundles the collaborators every scenario draws from.
type Deps struct {
	Amazon   *amazonapi.Client
	Flipkart *flipkartapi.Client
	Scraper  scrapers.SearchScraper
	Emitter  *report.Emitter
	Log      *utils.Logger

	Query                 string
	AmazonSite            string
	ResponseTimeThreshold time.Duration
	FetchDelay            time.Duration
	FrontendProductIndex  int
	AmazonCompareIndex    int
	FlipkartCompareIndex  int
}

// abort maps a fetch error onto the outcome taxonomy: 429 becomes a
// skip, any other upstream failure an errored scenario with the raw
// body logged for evidence.
func abort(o *models.Outcome, log *utils.Logger, err error) *models.Outcome {
	if errors.Is(err, models.ErrRateLimited) {
		log.Warn("[%s] rate limit exceeded, skipping scenario", o.Scenario)
		return o.Skip("rate limit exceeded")
	}

	var ue *models.UpstreamError
	if errors.As(err, &ue) {
		log.Error("[%s] upstream error %d, body: %s", o.Scenario, ue.StatusCode, ue.Body)
		return o.Errored(err.Error())
	}

	log.Error("[%s] fetch failed: %v", o.Scenario, err)
	return o.Errored(err.Error())
}
