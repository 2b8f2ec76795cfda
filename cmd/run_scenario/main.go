package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/raushankrgupta/product-reconciler/apiclient"
	amazonapi "github.com/raushankrgupta/product-reconciler/apiclient/amazon"
	flipkartapi "github.com/raushankrgupta/product-reconciler/apiclient/flipkart"
	"github.com/raushankrgupta/product-reconciler/config"
	"github.com/raushankrgupta/product-reconciler/models"
	"github.com/raushankrgupta/product-reconciler/report"
	"github.com/raushankrgupta/product-reconciler/scenarios"
	"github.com/raushankrgupta/product-reconciler/scrapers"
	"github.com/raushankrgupta/product-reconciler/utils"
)

// Runs a single scenario by name and prints its outcome, for debugging
// one flow without waiting on the full suite.
func main() {
	name := flag.String("scenario", "amazon-api", "scenario to run: amazon-api | flipkart-api | price-comparison | frontend-backend")
	flag.Parse()

	logger := utils.NewLogger()
	config.LoadConfig()

	emitter, err := report.NewEmitter(config.ReportDir)
	if err != nil {
		log.Fatalf("Failed to create report emitter: %v", err)
	}

	scraper, err := scrapers.ForSite(config.AmazonSite, logger)
	if err != nil {
		log.Fatalf("Failed to create scraper: %v", err)
	}

	api := apiclient.New()
	deps := &scenarios.Deps{
		Amazon:                amazonapi.NewClient(api, config.Amazon),
		Flipkart:              flipkartapi.NewClient(api, config.Flipkart),
		Scraper:               scraper,
		Emitter:               emitter,
		Log:                   logger,
		Query:                 config.SearchQuery,
		AmazonSite:            config.AmazonSite,
		ResponseTimeThreshold: config.ResponseTimeThreshold,
		FetchDelay:            config.FetchDelay,
		FrontendProductIndex:  config.FrontendProductIndex,
		AmazonCompareIndex:    config.AmazonCompareIndex,
		FlipkartCompareIndex:  config.FlipkartCompareIndex,
	}

	var outcome *models.Outcome
	ctx := context.Background()

	switch *name {
	case "amazon-api":
		outcome = scenarios.AmazonAPIValidation(ctx, deps)
	case "flipkart-api":
		outcome = scenarios.FlipkartAPIValidation(ctx, deps)
	case "price-comparison":
		outcome = scenarios.PriceComparison(ctx, deps)
	case "frontend-backend":
		outcome = scenarios.FrontendBackendValidation(ctx, deps)
	default:
		log.Fatalf("Unknown scenario: %s", *name)
	}

	b, _ := json.MarshalIndent(outcome, "", "  ")
	fmt.Println(string(b))
}
