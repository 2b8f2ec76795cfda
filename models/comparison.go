package models

// PriceOrdering tells which of the two reconciled records is cheaper.
type PriceOrdering string

const (
	FirstLower  PriceOrdering = "FIRST_LOWER"
	SecondLower PriceOrdering = "SECOND_LOWER"
	Equal       PriceOrdering = "EQUAL"
)

// FieldMatch pairs the two raw values that were compared with the
// equality verdict, so reports can show what actually differed.
type FieldMatch struct {
	Matched bool   `json:"matched"`
	First   string `json:"first"`
	Second  string `json:"second"`
}

// ComparisonResult is the immutable output of reconciling two records.
// It is built once by the reconciliation engine and consumed by the
// report emitter; a mismatch is a reportable outcome, not an error.
type ComparisonResult struct {
	IdentifierMatch FieldMatch    `json:"identifier_match"`
	URLMatch        FieldMatch    `json:"url_match"`
	PriceMatch      FieldMatch    `json:"price_match"`
	PriceOrdering   PriceOrdering `json:"price_ordering"`
	Verdict         string        `json:"verdict"`
}

// Violation is one (record, rule) failure produced by the collection
// validator. Index is the record's position in the collection.
type Violation struct {
	Index      int    `json:"index"`
	Identifier string `json:"identifier,omitempty"`
	Rule       string `json:"rule"`
	Detail     string `json:"detail"`
}
