package scenarios

import (
	"context"
	"fmt"
	"strings"

	"github.com/raushankrgupta/product-reconciler/adapters"
	"github.com/raushankrgupta/product-reconciler/models"
	"github.com/raushankrgupta/product-reconciler/report"
	"github.com/raushankrgupta/product-reconciler/validate"
)

// AmazonAPIValidation fetches the Amazon product search and holds the
// response to the Amazon rule set: transport assertions on the raw
// response, then collection validation on the adapted records, then
// the product-data artifact.
func AmazonAPIValidation(ctx context.Context, d *Deps) *models.Outcome {
	o := models.NewOutcome("amazon_api_validation")

	body, res, err := d.Amazon.Search(ctx)
	if err != nil {
		return abort(o, d.Log, err)
	}

	o.Check("status_200", res.StatusCode == 200,
		fmt.Sprintf("status code %d", res.StatusCode))
	o.Check("response_time_within_threshold", res.Duration < d.ResponseTimeThreshold,
		fmt.Sprintf("responded in %v, threshold %v", res.Duration, d.ResponseTimeThreshold))
	o.Check("body_has_request_id", body.RequestID != "",
		"request_id missing from response body")
	o.Check("body_has_status", body.Status != nil,
		"status missing from response body")
	o.Check("body_has_products", body.Data.Products != nil,
		"data.products missing from response body")
	o.Check("total_products_positive", body.Data.TotalProducts > 0,
		fmt.Sprintf("total_products is %d", body.Data.TotalProducts))

	col, adaptErrs := adapters.AmazonAPICollection(body, d.Query)
	o.Check("all_records_adapted", len(adaptErrs) == 0, joinErrs(adaptErrs))

	o.Violations = validate.Validate(col, validate.AmazonAPIRules())

	path, err := d.Emitter.Emit("amazon_api_products.json", report.Summarize(col))
	if o.Check("product_data_saved", err == nil, errDetail(err)) {
		d.Log.Info("[amazon_api_validation] product data saved to %s", path)
	}

	return o.Finish()
}

func joinErrs(errs []error) string {
	if len(errs) == 0 {
		return ""
	}
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}

func errDetail(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
