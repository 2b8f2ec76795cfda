package models

// Availability captures the stock state a source reports for a product.
type Availability string

const (
	InStock    Availability = "IN_STOCK"
	OutOfStock Availability = "OUT_OF_STOCK"
	Unknown    Availability = "UNKNOWN"
)

// Record is the canonical product representation every source is mapped
// into. Prices are plain decimal amounts with the currency symbol and
// grouping separators already stripped.
type Record struct {
	Source          string       `json:"source"`
	Identifier      string       `json:"identifier"`
	Title           string       `json:"title"`
	Price           float64      `json:"price"`
	OriginalPrice   float64      `json:"original_price,omitempty"`
	URL             string       `json:"url"`
	ImageURL        string       `json:"image_url,omitempty"`
	Currency        string       `json:"currency"`
	Availability    Availability `json:"availability,omitempty"`
	IsPrimeEligible bool         `json:"is_prime,omitempty"`
	Highlights      []string     `json:"highlights,omitempty"`
	Images          []string     `json:"images,omitempty"`

	// RawPrice keeps the price exactly as the source exposed it, for
	// format-conformance rules that inspect the original string.
	RawPrice string `json:"raw_price,omitempty"`
}

// Collection is an ordered batch of records returned by one source for
// one query. ReportedCount is the count field the source itself sent
// alongside the list (0 when the source has none).
type Collection struct {
	Source        string   `json:"source"`
	Query         string   `json:"query"`
	ReportedCount int      `json:"reported_count,omitempty"`
	Records       []Record `json:"records"`
}
