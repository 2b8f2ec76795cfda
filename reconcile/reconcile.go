// Package reconcile compares two canonical product records for
// identifier, URL and price agreement. It is pure: both inputs must
// already have passed through the adapters, and the engine performs no
// further normalization of its own.
package reconcile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/raushankrgupta/product-reconciler/models"
)

// Reconcile computes field-level match results and a price-ordering
// verdict for two records. A mismatch is a normal reportable outcome;
// this function never fails.
func Reconcile(a, b models.Record) models.ComparisonResult {
	ordering := ordering(a.Price, b.Price)

	return models.ComparisonResult{
		IdentifierMatch: models.FieldMatch{
			Matched: a.Identifier == b.Identifier,
			First:   a.Identifier,
			Second:  b.Identifier,
		},
		URLMatch: models.FieldMatch{
			Matched: a.URL == b.URL,
			First:   a.URL,
			Second:  b.URL,
		},
		PriceMatch: models.FieldMatch{
			Matched: a.Price == b.Price,
			First:   formatPrice(a.Price),
			Second:  formatPrice(b.Price),
		},
		PriceOrdering: ordering,
		Verdict:       verdict(a, b, ordering),
	}
}

func ordering(first, second float64) models.PriceOrdering {
	switch {
	case first < second:
		return models.FirstLower
	case second < first:
		return models.SecondLower
	default:
		return models.Equal
	}
}

func verdict(a, b models.Record, ord models.PriceOrdering) string {
	switch ord {
	case models.FirstLower:
		return fmt.Sprintf("%s has a lower price", label(a.Source))
	case models.SecondLower:
		return fmt.Sprintf("%s has a lower price", label(b.Source))
	default:
		return "Both have the same price"
	}
}

// label turns a source tag like "amazon-api" into "Amazon" for the
// human-readable verdict.
func label(source string) string {
	name, _, _ := strings.Cut(source, "-")
	if name == "" {
		return source
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
