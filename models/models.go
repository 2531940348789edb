package models

// --- Catalog ---

// Product represents a single catalog article. The catalog is read-only for
// this service; rows are never mutated.
type Product struct {
	ArticleID       int64   `json:"article_id"`
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	Color           string  `json:"color"`
	Department      string  `json:"department"`
	Section         string  `json:"section,omitempty"`
	GarmentGroup    string  `json:"garment_group,omitempty"`
	ImageURL        *string `json:"image_url"`
	ConfidenceScore float64 `json:"confidence_score"`
}

// --- Requests ---

// DateRange is an optional date filter on the transaction timeline.
// Values are date strings; several common formats are accepted.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SearchRequest is the body of POST /api/search.
type SearchRequest struct {
	Query             string     `json:"query" validate:"required,min=1,max=500"`
	Page              int        `json:"page" validate:"omitempty,gte=1"`
	PageSize          int        `json:"page_size" validate:"omitempty,gte=1,lte=100"`
	MinConfidence     *float64   `json:"min_confidence" validate:"omitempty,gte=0,lte=1"`
	Granularity       string     `json:"granularity" validate:"omitempty,oneof=day week month"`
	DateRange         *DateRange `json:"date_range"`
	IncludeSales      *bool      `json:"include_sales"`
	IncludeSalesTrend *bool      `json:"include_sales_trend"`
	IncludeForecast   bool       `json:"include_forecast"`
	IncludeSegments   bool       `json:"include_segments"`
}

// ApplyDefaults fills unset request fields with their documented defaults:
// page 1, page size 20, min confidence 0.5, monthly granularity, sales and
// trend included.
func (r *SearchRequest) ApplyDefaults() {
	if r.Page == 0 {
		r.Page = 1
	}
	if r.PageSize == 0 {
		r.PageSize = 20
	}
	if r.MinConfidence == nil {
		v := 0.5
		r.MinConfidence = &v
	}
	if r.Granularity == "" {
		r.Granularity = "month"
	}
	if r.IncludeSales == nil {
		v := true
		r.IncludeSales = &v
	}
	if r.IncludeSalesTrend == nil {
		v := true
		r.IncludeSalesTrend = &v
	}
}

// --- Pagination ---

// Pagination is the pagination metadata block of a search response.
type Pagination struct {
	CurrentPage int  `json:"current_page"`
	PageSize    int  `json:"page_size"`
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrev     bool `json:"has_prev"`
}

// --- Responses ---

// SearchResponse is the full payload of POST /api/search.
type SearchResponse struct {
	Query            string                 `json:"query"`
	ParsedQuery      ParsedIntent           `json:"parsed_query"`
	Products         []Product              `json:"products"`
	Pagination       Pagination             `json:"pagination"`
	SalesData        *SalesData             `json:"sales_data"`
	SalesTrend       *SalesTrend            `json:"sales_trend"`
	Insights         *Insights              `json:"insights"`
	Forecast         *Forecast              `json:"forecast"`
	CustomerSegments []CustomerSegment      `json:"customer_segments"`
	SegmentsDefault  bool                   `json:"segments_default"`
	Metadata         map[string]interface{} `json:"metadata"`
}

// ProductDetailResponse is the payload of GET /api/products/:articleId.
type ProductDetailResponse struct {
	ArticleID    int64                `json:"article_id"`
	Name         string               `json:"name"`
	Type         string               `json:"type"`
	Color        string               `json:"color"`
	Department   string               `json:"department"`
	Section      string               `json:"section"`
	GarmentGroup string               `json:"garment_group"`
	ImageURL     *string              `json:"image_url"`
	SalesSummary *ProductSalesSummary `json:"sales_summary"`
}
