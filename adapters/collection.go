package adapters

import (
	amazonapi "github.com/raushankrgupta/product-reconciler/apiclient/amazon"
	flipkartapi "github.com/raushankrgupta/product-reconciler/apiclient/flipkart"
	"github.com/raushankrgupta/product-reconciler/models"
)

// AmazonAPICollection adapts a full Amazon search response. Records
// with structural errors are skipped, and every error is returned so
// the caller can decide whether a partial batch is acceptable.
func AmazonAPICollection(resp *amazonapi.SearchResponse, query string) (models.Collection, []error) {
	col := models.Collection{
		Source:        "amazon-api",
		Query:         query,
		ReportedCount: resp.Data.TotalProducts,
	}

	var errs []error
	for _, p := range resp.Data.Products {
		rec, err := FromAmazonAPI(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		col.Records = append(col.Records, rec)
	}
	return col, errs
}

// FlipkartAPICollection adapts a full Flipkart search response with
// the same skip semantics.
func FlipkartAPICollection(resp *flipkartapi.SearchResponse, query string) (models.Collection, []error) {
	col := models.Collection{
		Source:        "flipkart-api",
		Query:         query,
		ReportedCount: resp.ProductsInPage,
	}

	var errs []error
	for _, p := range resp.Products {
		rec, err := FromFlipkartAPI(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		col.Records = append(col.Records, rec)
	}
	return col, errs
}
