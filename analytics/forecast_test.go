package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shopsight/models"
)

func TestPredictLinearGrowth(t *testing.T) {
	timeline := []models.SalesDataPoint{
		{Date: "2020-07-01", Revenue: 100},
		{Date: "2020-08-01", Revenue: 150},
		{Date: "2020-09-01", Revenue: 200},
	}

	forecast := Predict(timeline, 3)

	// growth = (200 - 100) / 2 = 50 per period
	assert.Len(t, forecast.Predictions, 3)
	assert.Equal(t, models.ForecastPoint{Date: "2020-10", PredictedRevenue: 250, Confidence: "low"}, forecast.Predictions[0])
	assert.Equal(t, models.ForecastPoint{Date: "2020-11", PredictedRevenue: 300, Confidence: "low"}, forecast.Predictions[1])
	assert.Equal(t, models.ForecastPoint{Date: "2020-12", PredictedRevenue: 350, Confidence: "low"}, forecast.Predictions[2])
	assert.Equal(t, forecastNote, forecast.Note)
}

func TestPredictClampsNegativeRevenue(t *testing.T) {
	timeline := []models.SalesDataPoint{
		{Date: "2020-07-01", Revenue: 500},
		{Date: "2020-08-01", Revenue: 250},
		{Date: "2020-09-01", Revenue: 20},
	}

	forecast := Predict(timeline, 3)

	// growth = (20 - 500) / 2 = -240; later periods bottom out at zero
	assert.Equal(t, 0.0, forecast.Predictions[0].PredictedRevenue)
	assert.Equal(t, 0.0, forecast.Predictions[1].PredictedRevenue)
	assert.Equal(t, 0.0, forecast.Predictions[2].PredictedRevenue)
}

func TestPredictInsufficientHistory(t *testing.T) {
	timeline := []models.SalesDataPoint{
		{Date: "2020-08-01", Revenue: 150},
		{Date: "2020-09-01", Revenue: 200},
	}

	forecast := Predict(timeline, 3)

	assert.Empty(t, forecast.Predictions)
	assert.Equal(t, insufficientNote, forecast.Note)
}

func TestPredictDefaultPeriods(t *testing.T) {
	timeline := []models.SalesDataPoint{
		{Date: "2020-07-01", Revenue: 100},
		{Date: "2020-08-01", Revenue: 100},
		{Date: "2020-09-01", Revenue: 100},
	}

	forecast := Predict(timeline, 0)

	assert.Len(t, forecast.Predictions, DefaultForecastPeriods)
	for _, p := range forecast.Predictions {
		assert.Equal(t, 100.0, p.PredictedRevenue)
	}
}
