package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/raushankrgupta/product-reconciler/apiclient"
	amazonapi "github.com/raushankrgupta/product-reconciler/apiclient/amazon"
	flipkartapi "github.com/raushankrgupta/product-reconciler/apiclient/flipkart"
	"github.com/raushankrgupta/product-reconciler/config"
	"github.com/raushankrgupta/product-reconciler/models"
	"github.com/raushankrgupta/product-reconciler/notify"
	"github.com/raushankrgupta/product-reconciler/report"
	"github.com/raushankrgupta/product-reconciler/scenarios"
	"github.com/raushankrgupta/product-reconciler/scrapers"
	"github.com/raushankrgupta/product-reconciler/storage"
	"github.com/raushankrgupta/product-reconciler/utils"
)

func main() {
	logger := utils.NewLogger()
	config.LoadConfig()

	logger.Info("=== Product reconciliation suite starting ===")
	logger.Info("Config — query: %q | report dir: %s | fetch delay: %v",
		config.SearchQuery, config.ReportDir, config.FetchDelay)

	emitter, err := report.NewEmitter(config.ReportDir)
	if err != nil {
		logger.Error("Failed to create report emitter: %v", err)
		os.Exit(1)
	}

	scraper, err := scrapers.ForSite(config.AmazonSite, logger)
	if err != nil {
		logger.Error("Failed to create scraper: %v", err)
		os.Exit(1)
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

	suite := []func(context.Context, *scenarios.Deps) *models.Outcome{
		scenarios.AmazonAPIValidation,
		scenarios.FlipkartAPIValidation,
		scenarios.PriceComparison,
		scenarios.FrontendBackendValidation,
	}

	ctx := context.Background()
	summary := &report.RunSummary{
		Query:       config.SearchQuery,
		GeneratedAt: time.Now(),
	}

	for i, run := range suite {
		if i > 0 {
			// One deliberate pause between scenarios keeps the
			// upstream APIs from tripping their rate limits.
			time.Sleep(config.FetchDelay)
		}
		outcome := run(ctx, deps)
		logger.Info("%s: %s (%v)", outcome.Scenario, outcome.Status,
			outcome.Duration.Round(time.Millisecond))
		summary.Outcomes = append(summary.Outcomes, outcome)
	}

	if path, err := emitter.Emit("run_summary.json", summary); err != nil {
		logger.Error("Failed to write run summary: %v", err)
	} else {
		logger.Info("Run summary written to %s", path)
	}

	persistRun(ctx, logger, summary)

	if summary.Failed() {
		logger.Error("Run finished with failures")
		os.Exit(1)
	}
	logger.Info("Run finished: all scenarios passed")
}

// persistRun ships the results to the optional backends: MongoDB for
// querying across runs, S3 for artifact retention, SendGrid when a
// failed run should page someone. Each is skipped when unconfigured
// and a failure in one never fails the run itself.
func persistRun(ctx context.Context, logger *utils.Logger, summary *report.RunSummary) {
	if config.MongoURI != "" {
		store, err := storage.NewRunStore(ctx, config.MongoURI)
		if err != nil {
			logger.Warn("MongoDB unavailable, skipping run persistence: %v", err)
		} else {
			if err := store.SaveRun(ctx, summary); err != nil {
				logger.Warn("Failed to save run to MongoDB: %v", err)
			} else {
				logger.Info("Run summary saved to MongoDB")
			}
			store.Close(ctx)
		}
	}

	if config.AWSBucketName != "" {
		uploader, err := storage.NewArtifactUploader(ctx, config.AWSRegion, config.AWSBucketName)
		if err != nil {
			logger.Warn("S3 unavailable, skipping artifact upload: %v", err)
		} else {
			runID := summary.GeneratedAt.Format("20060102-150405")
			artifacts, _ := filepath.Glob(filepath.Join(config.ReportDir, "*.json"))
			for _, artifact := range artifacts {
				key, err := uploader.UploadArtifact(ctx, runID, artifact)
				if err != nil {
					logger.Warn("Failed to upload %s: %v", artifact, err)
					continue
				}
				logger.Info("Uploaded artifact s3://%s/%s", config.AWSBucketName, key)
			}
		}
	}

	if summary.Failed() && config.SendGridKey != "" && config.NotifyEmail != "" {
		if err := notify.SendRunSummary(config.SendGridKey, config.NotifyEmail, summary); err != nil {
			logger.Warn("Failed to send failure notification: %v", err)
		} else {
			logger.Info("Failure notification sent to %s", config.NotifyEmail)
		}
	}
}
