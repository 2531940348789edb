package models

// Origin of a ParsedIntent: either the external model produced it, or the
// service degraded to local keyword extraction.
const (
	IntentSourceParsed   = "parsed"
	IntentSourceFallback = "fallback"
)

// IntentAttributes are the structured product attributes extracted from a
// query. All fields are optional; nil means the query did not mention them.
type IntentAttributes struct {
	Brand      *string `json:"brand,omitempty"`
	Type       *string `json:"type,omitempty"`
	Color      *string `json:"color,omitempty"`
	Style      *string `json:"style,omitempty"`
	Gender     *string `json:"gender,omitempty"`
	Department *string `json:"department,omitempty"`
}

// SearchFilters are hard constraints on the candidate set. Filters gate
// candidates before scoring; attributes only affect the confidence score.
type SearchFilters struct {
	Department *string  `json:"department,omitempty"`
	Color      *string  `json:"color,omitempty"`
	PriceMin   *float64 `json:"price_min,omitempty"`
	PriceMax   *float64 `json:"price_max,omitempty"`
}

// ParsedIntent is the structured form of a free-text search query.
type ParsedIntent struct {
	Keywords   []string         `json:"keywords"`
	Attributes IntentAttributes `json:"attributes"`
	Filters    SearchFilters    `json:"filters"`
	Intent     string           `json:"intent"`
	Source     string           `json:"source"`
}

// Insights is the narrative summary generated from aggregated metrics.
type Insights struct {
	Text        string   `json:"text"`
	KeyFindings []string `json:"key_findings"`
}
