package analytics

import (
	"context"
	"fmt"
	"log"
	"time"

	"shopsight/database"
	"shopsight/models"
)

// truncUnits whitelists the DATE_TRUNC argument so it never comes from
// user input. Unknown granularities fall back to month.
var truncUnits = map[string]string{
	"day":   "day",
	"week":  "week",
	"month": "month",
}

// Analyzer runs aggregations over the read-only transaction and customer
// stores.
type Analyzer struct {
	db *database.DB
}

func NewAnalyzer(db *database.DB) *Analyzer {
	return &Analyzer{db: db}
}

// SalesHistory aggregates transactions for the article set into a
// time-bucketed timeline: transaction count, revenue, average price and
// distinct customers per period. The id set is passed as a single
// set-membership predicate so the aggregation stays one scan. An empty id
// set yields an empty timeline and zero totals.
func (a *Analyzer) SalesHistory(ctx context.Context, articleIDs []int64, start, end *time.Time, granularity string) (*models.SalesData, error) {
	if len(articleIDs) == 0 {
		return &models.SalesData{Timeline: []models.SalesDataPoint{}}, nil
	}

	unit, ok := truncUnits[granularity]
	if !ok {
		unit = "month"
	}

	where := "article_id = ANY($1)"
	args := []interface{}{articleIDs}
	if start != nil {
		args = append(args, *start)
		where += fmt.Sprintf(" AND t_dat >= $%d", len(args))
	}
	if end != nil {
		args = append(args, *end)
		where += fmt.Sprintf(" AND t_dat <= $%d", len(args))
	}

	query := fmt.Sprintf(`
		SELECT DATE_TRUNC('%s', t_dat) AS period,
		       COUNT(*) AS transaction_count,
		       SUM(price) AS total_revenue,
		       AVG(price) AS avg_price,
		       COUNT(DISTINCT customer_id) AS unique_customers
		FROM transactions
		WHERE %s
		GROUP BY period
		ORDER BY period
	`, unit, where)

	rows, err := a.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, database.WrapErr(err)
	}
	defer rows.Close()

	timeline := make([]models.SalesDataPoint, 0)
	for rows.Next() {
		var period time.Time
		var point models.SalesDataPoint
		if err := rows.Scan(&period, &point.Transactions, &point.Revenue, &point.AvgPrice, &point.UniqueCustomers); err != nil {
			return nil, database.WrapErr(err)
		}
		point.Date = period.Format("2006-01-02")
		timeline = append(timeline, point)
	}
	if err := rows.Err(); err != nil {
		return nil, database.WrapErr(err)
	}

	data := &models.SalesData{Timeline: timeline, Summary: BuildSummary(timeline)}
	log.Printf("📊 [SALES] %d articles -> %d periods, %.2f revenue, %d transactions",
		len(articleIDs), len(timeline), data.Summary.TotalRevenue, data.Summary.TotalTransactions)
	return data, nil
}

// BuildSummary derives totals and the covered period range from a timeline.
// The timeline is ordered ascending, so the range is its first and last
// entries.
func BuildSummary(timeline []models.SalesDataPoint) models.SalesSummary {
	var summary models.SalesSummary
	for _, point := range timeline {
		summary.TotalRevenue += point.Revenue
		summary.TotalTransactions += point.Transactions
	}
	if len(timeline) > 0 {
		summary.DateRange.Start = timeline[0].Date
		summary.DateRange.End = timeline[len(timeline)-1].Date
	}
	return summary
}

// Summary returns the lifetime sales summary of one article, or nil when
// the article has no transactions.
func (a *Analyzer) Summary(ctx context.Context, articleID int64) (*models.ProductSalesSummary, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(price), 0), MIN(t_dat), MAX(t_dat)
		FROM transactions
		WHERE article_id = $1
	`
	var summary models.ProductSalesSummary
	var first, last *time.Time
	if err := a.db.Pool.QueryRow(ctx, query, articleID).Scan(
		&summary.TotalTransactions, &summary.TotalRevenue, &first, &last,
	); err != nil {
		return nil, database.WrapErr(err)
	}
	if summary.TotalTransactions == 0 {
		return nil, nil
	}
	if first != nil {
		v := first.Format("2006-01-02")
		summary.FirstSale = &v
	}
	if last != nil {
		v := last.Format("2006-01-02")
		summary.LastSale = &v
	}
	return &summary, nil
}
