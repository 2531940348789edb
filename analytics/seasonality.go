package analytics

import (
	"context"
	"math"
	"time"

	"shopsight/database"
	"shopsight/models"
)

// sparseThreshold is the minimum observed months before a trend stops
// being flagged sparse.
const sparseThreshold = 3

// SalesTrend computes monthly unit counts and the peak-to-mean seasonality
// score for the article set. Seasonality is always bucketed by calendar
// month, regardless of the granularity used for the sales timeline.
func (a *Analyzer) SalesTrend(ctx context.Context, articleIDs []int64) (*models.SalesTrend, error) {
	if len(articleIDs) == 0 {
		return ComputeTrend(nil), nil
	}

	query := `
		SELECT DATE_TRUNC('month', t_dat) AS month, COUNT(*) AS units
		FROM transactions
		WHERE article_id = ANY($1)
		GROUP BY month
		ORDER BY month
	`
	rows, err := a.db.Pool.Query(ctx, query, articleIDs)
	if err != nil {
		return nil, database.WrapErr(err)
	}
	defer rows.Close()

	var monthly []models.MonthlySalesPoint
	for rows.Next() {
		var month time.Time
		var units int
		if err := rows.Scan(&month, &units); err != nil {
			return nil, database.WrapErr(err)
		}
		monthly = append(monthly, models.MonthlySalesPoint{
			Month: month.Format("2006-01"),
			Sales: units,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, database.WrapErr(err)
	}

	trend := ComputeTrend(monthly)
	trend.ArticleID = articleIDs[0]
	return trend, nil
}

// ComputeTrend derives the seasonality metrics from ordered monthly unit
// counts. With no observed months the score is 0 and the trend is flagged
// sparse; every month attaining the maximum is reported as a peak.
func ComputeTrend(monthly []models.MonthlySalesPoint) *models.SalesTrend {
	if monthly == nil {
		monthly = []models.MonthlySalesPoint{}
	}
	trend := &models.SalesTrend{
		MonthlySales: monthly,
		PeakMonths:   []string{},
		DataQuality: models.DataQuality{
			MonthsObserved: len(monthly),
			SparseData:     len(monthly) < sparseThreshold,
		},
	}
	if len(monthly) == 0 {
		return trend
	}

	maxUnits := 0
	total := 0
	for _, point := range monthly {
		total += point.Sales
		if point.Sales > maxUnits {
			maxUnits = point.Sales
		}
	}

	mean := float64(total) / float64(len(monthly))
	if mean > 0 {
		trend.SeasonalityScore = math.Round(float64(maxUnits)/mean*1000) / 1000
	}
	if maxUnits > 0 {
		for _, point := range monthly {
			if point.Sales == maxUnits {
				trend.PeakMonths = append(trend.PeakMonths, point.Month)
			}
		}
	}
	return trend
}
