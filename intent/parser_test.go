package intent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"shopsight/models"
)

func TestFallbackIntentFiltersShortWords(t *testing.T) {
	parsed := FallbackIntent("a red Nike top in XL")

	assert.Equal(t, []string{"red", "Nike", "top"}, parsed.Keywords)
	assert.Equal(t, models.IntentSourceFallback, parsed.Source)
	assert.Equal(t, "product_search", parsed.Intent)
	assert.Nil(t, parsed.Attributes.Brand)
	assert.Nil(t, parsed.Filters.Department)
}

func TestFallbackIntentEmptyQuery(t *testing.T) {
	parsed := FallbackIntent("   ")

	assert.Empty(t, parsed.Keywords)
	assert.Equal(t, models.IntentSourceFallback, parsed.Source)
}

func TestParseWithoutKeyUsesFallback(t *testing.T) {
	p := NewParser("", "")

	parsed := p.Parse(context.Background(), "black Nike running shoes")

	assert.Equal(t, models.IntentSourceFallback, parsed.Source)
	assert.Equal(t, []string{"black", "Nike", "running", "shoes"}, parsed.Keywords)
}

func TestParserDefaultsModel(t *testing.T) {
	assert.Equal(t, "gemini-2.5-flash-lite", NewParser("key", "").Model())
	assert.Equal(t, "gemini-2.5-pro", NewParser("key", "gemini-2.5-pro").Model())
	assert.True(t, NewParser("key", "").Configured())
	assert.False(t, NewParser("", "").Configured())
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"intent":"product_search"}`,
		ExtractJSON("```json\n{\"intent\":\"product_search\"}\n```"))
	assert.Equal(t, `{"a":{"b":1}}`,
		ExtractJSON(`Here you go: {"a":{"b":1}} hope that helps`))
	assert.Empty(t, ExtractJSON("no json here"))
	assert.Empty(t, ExtractJSON("} backwards {"))
}
