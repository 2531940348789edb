package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopsight/models"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestBuildWhereKeywordsAreORed(t *testing.T) {
	where, args, err := BuildWhere([]string{"Nike", "shoes"}, models.SearchFilters{})
	require.NoError(t, err)

	assert.Equal(t,
		"((LOWER(prod_name) LIKE $1 OR LOWER(product_type_name) LIKE $2) OR (LOWER(prod_name) LIKE $3 OR LOWER(product_type_name) LIKE $4))",
		where)
	assert.Equal(t, []interface{}{"%nike%", "%nike%", "%shoes%", "%shoes%"}, args)
}

func TestBuildWhereFiltersAreANDed(t *testing.T) {
	filters := models.SearchFilters{
		Department: strPtr("Sport"),
		Color:      strPtr("Black"),
	}
	where, args, err := BuildWhere([]string{"shoes"}, filters)
	require.NoError(t, err)

	assert.Equal(t,
		"((LOWER(prod_name) LIKE $1 OR LOWER(product_type_name) LIKE $2)) AND LOWER(department_name) = $3 AND LOWER(colour_group_name) = $4",
		where)
	assert.Equal(t, []interface{}{"%shoes%", "%shoes%", "sport", "black"}, args)
}

func TestBuildWhereNoKeywordsFiltersOnly(t *testing.T) {
	where, args, err := BuildWhere(nil, models.SearchFilters{Department: strPtr("Sport")})
	require.NoError(t, err)

	assert.Equal(t, "LOWER(department_name) = $1", where)
	assert.Equal(t, []interface{}{"sport"}, args)
}

func TestBuildWhereEmptyDegradesToAlwaysTrue(t *testing.T) {
	where, args, err := BuildWhere(nil, models.SearchFilters{})
	require.NoError(t, err)

	assert.Equal(t, "1=1", where)
	assert.Empty(t, args)
}

func TestBuildWherePriceBounds(t *testing.T) {
	filters := models.SearchFilters{PriceMin: floatPtr(10), PriceMax: floatPtr(50)}
	where, args, err := BuildWhere(nil, filters)
	require.NoError(t, err)

	assert.Equal(t,
		"article_id IN (SELECT article_id FROM transactions GROUP BY article_id HAVING AVG(price) >= $1 AND AVG(price) <= $2)",
		where)
	assert.Equal(t, []interface{}{10.0, 50.0}, args)
}

func TestBuildWhereRejectsEmptyFilterValues(t *testing.T) {
	_, _, err := BuildWhere(nil, models.SearchFilters{Department: strPtr("")})
	assert.ErrorIs(t, err, models.ErrInvalidFilter)

	_, _, err = BuildWhere(nil, models.SearchFilters{Color: strPtr("   ")})
	assert.ErrorIs(t, err, models.ErrInvalidFilter)
}

func TestBuildWhereRejectsBadPriceBounds(t *testing.T) {
	_, _, err := BuildWhere(nil, models.SearchFilters{PriceMin: floatPtr(-1)})
	assert.ErrorIs(t, err, models.ErrInvalidFilter)

	_, _, err = BuildWhere(nil, models.SearchFilters{PriceMin: floatPtr(100), PriceMax: floatPtr(10)})
	assert.ErrorIs(t, err, models.ErrInvalidFilter)
}
