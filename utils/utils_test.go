package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreatePagination(t *testing.T) {
	p := CreatePagination(12719, 3, 20)

	assert.Equal(t, 3, p.CurrentPage)
	assert.Equal(t, 20, p.PageSize)
	assert.Equal(t, 12719, p.TotalItems)
	assert.Equal(t, 636, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestCreatePaginationBoundaries(t *testing.T) {
	first := CreatePagination(100, 1, 20)
	assert.True(t, first.HasNext)
	assert.False(t, first.HasPrev)

	last := CreatePagination(100, 5, 20)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)

	empty := CreatePagination(0, 1, 20)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}

func TestCreatePaginationDefaults(t *testing.T) {
	p := CreatePagination(50, 0, 0)

	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, 20, p.PageSize)
	assert.Equal(t, 3, p.TotalPages)
}
