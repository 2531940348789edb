package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	var req SearchRequest
	req.ApplyDefaults()

	assert.Equal(t, 1, req.Page)
	assert.Equal(t, 20, req.PageSize)
	assert.Equal(t, 0.5, *req.MinConfidence)
	assert.Equal(t, "month", req.Granularity)
	assert.True(t, *req.IncludeSales)
	assert.True(t, *req.IncludeSalesTrend)
	assert.False(t, req.IncludeForecast)
	assert.False(t, req.IncludeSegments)
}

func TestApplyDefaultsPreservesExplicitValues(t *testing.T) {
	minConf := 0.0
	includeSales := false
	req := SearchRequest{
		Page:          3,
		PageSize:      50,
		MinConfidence: &minConf,
		Granularity:   "day",
		IncludeSales:  &includeSales,
	}
	req.ApplyDefaults()

	assert.Equal(t, 3, req.Page)
	assert.Equal(t, 50, req.PageSize)
	assert.Equal(t, 0.0, *req.MinConfidence)
	assert.Equal(t, "day", req.Granularity)
	assert.False(t, *req.IncludeSales)
	assert.True(t, *req.IncludeSalesTrend)
}
