package scenarios

import (
	"context"
	"fmt"
	"time"

	"github.com/raushankrgupta/product-reconciler/adapters"
	"github.com/raushankrgupta/product-reconciler/models"
	"github.com/raushankrgupta/product-reconciler/reconcile"
	"github.com/raushankrgupta/product-reconciler/report"
)

// PriceComparison fetches both APIs sequentially, waiting the
// configured delay between them to stay under the upstream rate
// limits, then picks one record from each, reconciles their prices
// and writes the comparison artifact. A price difference is a
// reported verdict, not a failure.
func PriceComparison(ctx context.Context, d *Deps) *models.Outcome {
	o := models.NewOutcome("amazon_flipkart_price_comparison")

	amazonBody, _, err := d.Amazon.Search(ctx)
	if err != nil {
		return abort(o, d.Log, err)
	}

	select {
	case <-time.After(d.FetchDelay):
	case <-ctx.Done():
		return o.Errored(ctx.Err().Error())
	}

	flipkartBody, _, err := d.Flipkart.Search(ctx)
	if err != nil {
		return abort(o, d.Log, err)
	}

	if len(amazonBody.Data.Products) <= d.AmazonCompareIndex {
		return o.Errored(fmt.Sprintf("amazon returned %d products, need index %d",
			len(amazonBody.Data.Products), d.AmazonCompareIndex))
	}
	if len(flipkartBody.Products) <= d.FlipkartCompareIndex {
		return o.Errored(fmt.Sprintf("flipkart returned %d products, need index %d",
			len(flipkartBody.Products), d.FlipkartCompareIndex))
	}

	first, err := adapters.FromAmazonAPI(amazonBody.Data.Products[d.AmazonCompareIndex])
	if err != nil {
		return o.Errored(err.Error())
	}
	second, err := adapters.FromFlipkartAPI(flipkartBody.Products[d.FlipkartCompareIndex])
	if err != nil {
		return o.Errored(err.Error())
	}

	result := reconcile.Reconcile(first, second)
	d.Log.Info("[price_comparison] %s (amazon %v vs flipkart %v)",
		result.Verdict, first.Price, second.Price)

	o.Check("prices_compared", true, result.Verdict)

	path, err := d.Emitter.Emit("amazon_flipkart_comparison.json", report.ComparisonReport{
		First:  first,
		Second: second,
		Result: result,
	})
	if o.Check("comparison_report_saved", err == nil, errDetail(err)) {
		d.Log.Info("[price_comparison] comparison report generated at %s", path)
	}

	return o.Finish()
}
