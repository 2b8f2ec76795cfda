package models

// SearchResult is one product tile lifted from a storefront
// search-results page, untouched: the name text, the raw price string
// (currency symbol included) and the anchor href exactly as the DOM
// carried them. The adapters turn these into canonical records.
type SearchResult struct {
	Name     string `json:"name"`
	RawPrice string `json:"price"`
	Href     string `json:"link"`
}
