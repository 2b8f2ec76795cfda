package scenarios

import (
	"context"
	"fmt"

	"github.com/raushankrgupta/product-reconciler/adapters"
	"github.com/raushankrgupta/product-reconciler/models"
	"github.com/raushankrgupta/product-reconciler/report"
	"github.com/raushankrgupta/product-reconciler/validate"
)

// FlipkartAPIValidation fetches the Flipkart product search and holds
// the response to the Flipkart rule set.
func FlipkartAPIValidation(ctx context.Context, d *Deps) *models.Outcome {
	o := models.NewOutcome("flipkart_api_validation")

	body, res, err := d.Flipkart.Search(ctx)
	if err != nil {
		return abort(o, d.Log, err)
	}

	o.Check("status_200", res.StatusCode == 200,
		fmt.Sprintf("status code %d", res.StatusCode))
	o.Check("response_time_within_threshold", res.Duration < d.ResponseTimeThreshold,
		fmt.Sprintf("responded in %v, threshold %v", res.Duration, d.ResponseTimeThreshold))
	o.Check("body_has_total_pages", body.TotalPages > 0,
		fmt.Sprintf("totalPages is %d", body.TotalPages))
	o.Check("body_has_products", body.Products != nil,
		"products missing from response body")
	o.Check("products_in_page_positive", body.ProductsInPage > 0,
		fmt.Sprintf("productsInPage is %d", body.ProductsInPage))

	col, adaptErrs := adapters.FlipkartAPICollection(body, d.Query)
	o.Check("all_records_adapted", len(adaptErrs) == 0, joinErrs(adaptErrs))

	o.Violations = validate.Validate(col, validate.FlipkartAPIRules())

	path, err := d.Emitter.Emit("flipkart_api_products.json", report.Summarize(col))
	if o.Check("product_data_saved", err == nil, errDetail(err)) {
		d.Log.Info("[flipkart_api_validation] product data saved to %s", path)
	}

	return o.Finish()
}
