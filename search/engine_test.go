package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shopsight/models"
)

func TestCandidateLimit(t *testing.T) {
	assert.Equal(t, 250, candidateLimit(10))
	assert.Equal(t, 500, candidateLimit(20))
	assert.Equal(t, 500, candidateLimit(100))
	assert.Equal(t, 25, candidateLimit(1))
}

func TestPaginate(t *testing.T) {
	scored := make([]models.Product, 0, 45)
	for i := 1; i <= 45; i++ {
		scored = append(scored, models.Product{ArticleID: int64(i)})
	}

	first := paginate(scored, 1, 20)
	assert.Len(t, first, 20)
	assert.Equal(t, int64(1), first[0].ArticleID)
	assert.Equal(t, int64(20), first[19].ArticleID)

	last := paginate(scored, 3, 20)
	assert.Len(t, last, 5)
	assert.Equal(t, int64(41), last[0].ArticleID)

	beyond := paginate(scored, 4, 20)
	assert.Empty(t, beyond)
}

func TestPaginateEmptySet(t *testing.T) {
	assert.Empty(t, paginate(nil, 1, 20))
	assert.Empty(t, paginate([]models.Product{}, 5, 20))
}
