package analytics

import (
	"math"
	"time"

	"shopsight/models"
)

const (
	// DefaultForecastPeriods is the number of future periods predicted when
	// the caller does not ask for a specific horizon.
	DefaultForecastPeriods = 3

	forecastNote     = "Forecast based on linear extrapolation from the last 3 observed periods; illustrative only"
	insufficientNote = "Insufficient historical data for forecasting (requires at least 3 observed periods)"
)

// Predict extrapolates revenue for the next periods from the timeline.
// Growth is the average step change over the last three points; each
// prediction is clamped at zero and labeled "low" confidence because this
// is a naive extrapolation, not a statistical forecast. Fewer than three
// observed periods yields empty predictions with an explanatory note.
func Predict(timeline []models.SalesDataPoint, periods int) *models.Forecast {
	if periods <= 0 {
		periods = DefaultForecastPeriods
	}
	if len(timeline) < 3 {
		return &models.Forecast{
			Predictions: []models.ForecastPoint{},
			Note:        insufficientNote,
		}
	}

	last := timeline[len(timeline)-1]
	growth := (last.Revenue - timeline[len(timeline)-3].Revenue) / 2

	lastDate, err := time.Parse("2006-01-02", last.Date)
	if err != nil {
		return &models.Forecast{
			Predictions: []models.ForecastPoint{},
			Note:        insufficientNote,
		}
	}

	predictions := make([]models.ForecastPoint, 0, periods)
	for i := 1; i <= periods; i++ {
		predicted := last.Revenue + growth*float64(i)
		if predicted < 0 {
			predicted = 0
		}
		predictions = append(predictions, models.ForecastPoint{
			Date:             lastDate.AddDate(0, i, 0).Format("2006-01"),
			PredictedRevenue: math.Round(predicted*100) / 100,
			Confidence:       "low",
		})
	}

	return &models.Forecast{Predictions: predictions, Note: forecastNote}
}
