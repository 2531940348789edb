package analytics

import (
	"context"
	"log"
	"math"

	"shopsight/database"
	"shopsight/models"
)

// Fixed age bands for rule-based segmentation: <30, [30,50), >=50.
const (
	youngUpperBound  = 30
	middleUpperBound = 50
)

// Segments partitions the buyers of the article set into age bands.
// Customers with unknown age are discarded before bucketing. When no
// age data exists for the item set, the fixed default segments are
// returned, flagged via IsDefault.
func (a *Analyzer) Segments(ctx context.Context, articleIDs []int64) (*models.SegmentResult, error) {
	if len(articleIDs) == 0 {
		return DefaultSegments(), nil
	}

	query := `
		SELECT c.age
		FROM transactions t
		JOIN customers c ON t.customer_id = c.customer_id
		WHERE t.article_id = ANY($1) AND c.age IS NOT NULL
	`
	rows, err := a.db.Pool.Query(ctx, query, articleIDs)
	if err != nil {
		return nil, database.WrapErr(err)
	}
	defer rows.Close()

	var ages []int
	for rows.Next() {
		var age int
		if err := rows.Scan(&age); err != nil {
			return nil, database.WrapErr(err)
		}
		ages = append(ages, age)
	}
	if err := rows.Err(); err != nil {
		return nil, database.WrapErr(err)
	}

	result := SegmentByAge(ages)
	if result.IsDefault {
		log.Printf("⚠️ [SEGMENTS] No customer age data for %d articles, using defaults", len(articleIDs))
	}
	return result, nil
}

// SegmentByAge buckets known ages into the fixed bands and emits one
// segment per non-empty band, with percentage of the known-age population
// and mean age, both rounded to integers. Empty input falls back to the
// default segments.
func SegmentByAge(ages []int) *models.SegmentResult {
	if len(ages) == 0 {
		return DefaultSegments()
	}

	var young, middle, mature []int
	for _, age := range ages {
		switch {
		case age < youngUpperBound:
			young = append(young, age)
		case age < middleUpperBound:
			middle = append(middle, age)
		default:
			mature = append(mature, age)
		}
	}

	total := len(ages)
	segments := make([]models.CustomerSegment, 0, 3)
	addBand := func(label string, band []int) {
		if len(band) == 0 {
			return
		}
		sum := 0
		for _, age := range band {
			sum += age
		}
		segments = append(segments, models.CustomerSegment{
			Segment:    label,
			Percentage: int(math.Round(float64(len(band)) / float64(total) * 100)),
			AvgAge:     int(math.Round(float64(sum) / float64(len(band)))),
		})
	}

	addBand("Young Professionals (18-29)", young)
	addBand("Established Adults (30-49)", middle)
	addBand("Mature Customers (50+)", mature)

	return &models.SegmentResult{Segments: segments}
}

// DefaultSegments is the fixed illustrative segment set returned when no
// customer age data is available for the item set.
func DefaultSegments() *models.SegmentResult {
	return &models.SegmentResult{
		Segments: []models.CustomerSegment{
			{Segment: "Young Professionals", Percentage: 35, AvgAge: 28},
			{Segment: "Fitness Enthusiasts", Percentage: 42, AvgAge: 32},
			{Segment: "Casual Shoppers", Percentage: 23, AvgAge: 41},
		},
		IsDefault: true,
	}
}
