package models

// SalesDataPoint is one bucket of the aggregated sales timeline. Periods
// with no transactions are absent, not zero-filled.
type SalesDataPoint struct {
	Date            string  `json:"date"`
	Revenue         float64 `json:"revenue"`
	Transactions    int     `json:"transactions"`
	AvgPrice        float64 `json:"avg_price"`
	UniqueCustomers int     `json:"unique_customers"`
}

// SummaryRange is the first and last observed period of a timeline.
type SummaryRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SalesSummary holds derived totals for a timeline. Never persisted.
type SalesSummary struct {
	TotalRevenue      float64      `json:"total_revenue"`
	TotalTransactions int          `json:"total_transactions"`
	DateRange         SummaryRange `json:"date_range"`
}

// SalesData couples a timeline with its summary.
type SalesData struct {
	Timeline []SalesDataPoint `json:"timeline"`
	Summary  SalesSummary     `json:"summary"`
}

// ProductSalesSummary is the lifetime sales summary of a single article.
type ProductSalesSummary struct {
	TotalTransactions int     `json:"total_transactions"`
	TotalRevenue      float64 `json:"total_revenue"`
	FirstSale         *string `json:"first_sale"`
	LastSale          *string `json:"last_sale"`
}

// MonthlySalesPoint is the unit count for one calendar month (YYYY-MM).
type MonthlySalesPoint struct {
	Month string `json:"month"`
	Sales int    `json:"sales"`
}

// DataQuality flags thin samples so consumers can discount them.
type DataQuality struct {
	MonthsObserved int  `json:"months_observed"`
	SparseData     bool `json:"sparse_data"`
}

// SalesTrend is the monthly seasonality view of the matched article set.
// ArticleID is the representative (lowest) matched article.
type SalesTrend struct {
	ArticleID        int64               `json:"article_id"`
	MonthlySales     []MonthlySalesPoint `json:"monthly_sales"`
	SeasonalityScore float64             `json:"seasonality_score"`
	PeakMonths       []string            `json:"peak_months"`
	DataQuality      DataQuality         `json:"data_quality"`
}

// ForecastPoint is one predicted period. Confidence is always "low": the
// method is a naive extrapolation, not a statistical forecast.
type ForecastPoint struct {
	Date             string  `json:"date"`
	PredictedRevenue float64 `json:"predicted_revenue"`
	Confidence       string  `json:"confidence"`
}

// Forecast is the extrapolated revenue outlook. Note always carries the
// illustrative-method disclaimer.
type Forecast struct {
	Predictions []ForecastPoint `json:"predictions"`
	Note        string          `json:"note"`
}

// CustomerSegment is one age-band buyer segment.
type CustomerSegment struct {
	Segment    string `json:"segment"`
	Percentage int    `json:"percentage"`
	AvgAge     int    `json:"avg_age"`
}

// SegmentResult tags segments with their origin so callers can tell
// computed segments from the illustrative defaults.
type SegmentResult struct {
	Segments  []CustomerSegment `json:"segments"`
	IsDefault bool              `json:"is_default"`
}
