package report

import (
	"time"

	"github.com/raushankrgupta/product-reconciler/models"
)

// ProductSummary is the per-product shape written into collection
// artifacts: id, name, price, url and image.
type ProductSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	URL   string  `json:"url"`
	Image string  `json:"image,omitempty"`
}

// Summarize maps a collection into the artifact shape.
func Summarize(col models.Collection) []ProductSummary {
	out := make([]ProductSummary, 0, len(col.Records))
	for _, r := range col.Records {
		image := r.ImageURL
		if image == "" && len(r.Images) > 0 {
			image = r.Images[0]
		}
		out = append(out, ProductSummary{
			ID:    r.Identifier,
			Name:  r.Title,
			Price: r.Price,
			URL:   r.URL,
			Image: image,
		})
	}
	return out
}

// ComparisonReport is the artifact for a cross-source price comparison.
type ComparisonReport struct {
	First  models.Record           `json:"first_product"`
	Second models.Record           `json:"second_product"`
	Result models.ComparisonResult `json:"comparison"`
}

// ValidationReport is the artifact for a frontend/backend data
// validation run.
type ValidationReport struct {
	FrontendProduct models.Record           `json:"frontend_product"`
	BackendProduct  models.Record           `json:"backend_product"`
	Result          models.ComparisonResult `json:"comparison_results"`
}

// RunSummary aggregates every scenario outcome of one suite run.
type RunSummary struct {
	Query       string            `json:"query"`
	GeneratedAt time.Time         `json:"generated_at"`
	Outcomes    []*models.Outcome `json:"outcomes"`
}

// Failed reports whether any scenario in the run failed or errored.
func (s *RunSummary) Failed() bool {
	for _, o := range s.Outcomes {
		if o.Status == models.StatusFailed || o.Status == models.StatusErrored {
			return true
		}
	}
	return false
}
