package validate

import (
	"fmt"
	"strings"

	"github.com/raushankrgupta/product-reconciler/models"
)

// RequireIdentifier fails records without a source-assigned id.
func RequireIdentifier() RecordRule {
	return RecordRule{
		Name: "identifier_present",
		Check: func(r models.Record) (bool, string) {
			return r.Identifier != "", "identifier is empty"
		},
	}
}

// RequireTitle fails records with an empty title.
func RequireTitle() RecordRule {
	return RecordRule{
		Name: "title_present",
		Check: func(r models.Record) (bool, string) {
			return strings.TrimSpace(r.Title) != "", "title is empty"
		},
	}
}

// RequireURL fails records without a product detail URL.
func RequireURL() RecordRule {
	return RecordRule{
		Name: "url_present",
		Check: func(r models.Record) (bool, string) {
			return r.URL != "", "url is empty"
		},
	}
}

// RequireImage fails records without a main image URL.
func RequireImage() RecordRule {
	return RecordRule{
		Name: "image_present",
		Check: func(r models.Record) (bool, string) {
			return r.ImageURL != "" || len(r.Images) > 0, "no image url"
		},
	}
}

// PricePositive fails zero or negative prices. A price the normalizer
// could not parse lands at zero, so this rule is also the designed
// detection path for unparsable price strings.
func PricePositive() RecordRule {
	return RecordRule{
		Name: "price_positive",
		Check: func(r models.Record) (bool, string) {
			return r.Price > 0, fmt.Sprintf("price is %v", r.Price)
		},
	}
}

// PriceNotAboveOriginal enforces the discount invariant
// price <= originalPrice. Records without an original price pass
// trivially because the adapters default it to the selling price.
func PriceNotAboveOriginal() RecordRule {
	return RecordRule{
		Name: "price_not_above_original",
		Check: func(r models.Record) (bool, string) {
			if r.OriginalPrice == 0 {
				return true, ""
			}
			return r.Price <= r.OriginalPrice,
				fmt.Sprintf("selling price %v exceeds original price %v", r.Price, r.OriginalPrice)
		},
	}
}

// RawPricePrefix fails records whose raw price string does not start
// with the given currency symbol. Only meaningful for sources that
// expose prices as strings.
func RawPricePrefix(symbol string) RecordRule {
	return RecordRule{
		Name: "raw_price_prefix",
		Check: func(r models.Record) (bool, string) {
			return strings.HasPrefix(r.RawPrice, symbol),
				fmt.Sprintf("raw price %q does not start with %q", r.RawPrice, symbol)
		},
	}
}

// CurrencyIs fails records whose currency differs from the source
// configuration's fixed code.
func CurrencyIs(code string) RecordRule {
	return RecordRule{
		Name: "currency_code",
		Check: func(r models.Record) (bool, string) {
			return r.Currency == code, fmt.Sprintf("currency is %q, want %q", r.Currency, code)
		},
	}
}

// AvailabilityIs fails records not in the given stock state.
func AvailabilityIs(want models.Availability) RecordRule {
	return RecordRule{
		Name: "availability",
		Check: func(r models.Record) (bool, string) {
			return r.Availability == want, fmt.Sprintf("availability is %q, want %q", r.Availability, want)
		},
	}
}

// RequireHighlights fails records without a highlights list.
func RequireHighlights() RecordRule {
	return RecordRule{
		Name: "highlights_present",
		Check: func(r models.Record) (bool, string) {
			return r.Highlights != nil, "highlights missing"
		},
	}
}

// AmazonAPIRules is the rule set the Amazon search API is held to.
func AmazonAPIRules() RuleSet {
	return RuleSet{
		Record: []RecordRule{
			RequireIdentifier(),
			RequireTitle(),
			RequireURL(),
			RequireImage(),
			PricePositive(),
			PriceNotAboveOriginal(),
			RawPricePrefix("₹"),
			CurrencyIs("INR"),
		},
		Collection: []CollectionRule{
			CurrencyUniform(),
		},
	}
}

// FlipkartAPIRules is the rule set the Flipkart search API is held to.
func FlipkartAPIRules() RuleSet {
	return RuleSet{
		Record: []RecordRule{
			RequireIdentifier(),
			RequireTitle(),
			RequireURL(),
			RequireImage(),
			PricePositive(),
			AvailabilityIs(models.InStock),
			RequireHighlights(),
		},
		Collection: []CollectionRule{
			CurrencyUniform(),
			CountMatchesReported(),
		},
	}
}
