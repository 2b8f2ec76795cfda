// Package validate runs configurable rule sets over canonical product
// collections. Every failing (record, rule) pair yields a Violation;
// validation never stops at the first failure because the point is to
// enumerate all non-conformant records in one pass.
package validate

import (
	"fmt"

	"github.com/raushankrgupta/product-reconciler/models"
)

// RecordRule checks a single record. Check returns whether the record
// conforms plus a detail string for the violation report.
type RecordRule struct {
	Name  string
	Check func(r models.Record) (bool, string)
}

// CollectionRule checks a property spanning the whole collection, such
// as currency uniformity.
type CollectionRule struct {
	Name  string
	Check func(c models.Collection) []models.Violation
}

// RuleSet is the per-source validation configuration.
type RuleSet struct {
	Record     []RecordRule
	Collection []CollectionRule
}

// Validate applies the rule set and returns one violation per
// (record, rule) failure.
func Validate(col models.Collection, rules RuleSet) []models.Violation {
	var violations []models.Violation

	for i, rec := range col.Records {
		for _, rule := range rules.Record {
			ok, detail := rule.Check(rec)
			if ok {
				continue
			}
			violations = append(violations, models.Violation{
				Index:      i,
				Identifier: rec.Identifier,
				Rule:       rule.Name,
				Detail:     detail,
			})
		}
	}

	for _, rule := range rules.Collection {
		violations = append(violations, rule.Check(col)...)
	}

	return violations
}

// CurrencyUniform flags every record whose currency differs from the
// first record's. An empty collection is trivially uniform.
func CurrencyUniform() CollectionRule {
	return CollectionRule{
		Name: "currency_uniform",
		Check: func(c models.Collection) []models.Violation {
			if len(c.Records) == 0 {
				return nil
			}
			want := c.Records[0].Currency
			var out []models.Violation
			for i, r := range c.Records[1:] {
				if r.Currency != want {
					out = append(out, models.Violation{
						Index:      i + 1,
						Identifier: r.Identifier,
						Rule:       "currency_uniform",
						Detail:     fmt.Sprintf("currency %q differs from batch currency %q", r.Currency, want),
					})
				}
			}
			return out
		},
	}
}

// CountMatchesReported flags the collection when its length disagrees
// with the count field the source sent alongside the list. Sources
// that report a total across pages rather than a page count should not
// include this rule.
func CountMatchesReported() CollectionRule {
	return CollectionRule{
		Name: "count_matches_reported",
		Check: func(c models.Collection) []models.Violation {
			if c.ReportedCount == 0 || len(c.Records) == c.ReportedCount {
				return nil
			}
			return []models.Violation{{
				Index:  -1,
				Rule:   "count_matches_reported",
				Detail: fmt.Sprintf("collection has %d records, source reported %d", len(c.Records), c.ReportedCount),
			}}
		},
	}
}
