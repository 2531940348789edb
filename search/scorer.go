package search

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"shopsight/models"
)

// Relevance component weights. They sum to 1.0 so the score stays in [0,1].
const (
	brandWeight = 0.35
	typeWeight  = 0.30
	colorWeight = 0.20
	nameWeight  = 0.15
)

// DefaultMinConfidence is the threshold applied when a request does not
// supply one.
const DefaultMinConfidence = 0.5

// nonWord splits text into tokens for whole-word matching.
var nonWord = regexp.MustCompile(`[^\pL\pN]+`)

// containsWord reports whether word occurs in text as a whole token.
// Word-boundary matching prevents "Nike" from matching inside "Jannike".
func containsWord(text, word string) bool {
	if text == "" || word == "" {
		return false
	}
	word = strings.ToLower(strings.TrimSpace(word))
	for _, token := range nonWord.Split(strings.ToLower(text), -1) {
		if token == word {
			return true
		}
	}
	return false
}

// Score computes the weighted relevance of one product against the parsed
// intent. Deterministic: the same product and intent always yield the same
// score. Absent attributes contribute no credit.
func Score(p models.Product, intent models.ParsedIntent) float64 {
	var confidence float64

	if brand := intent.Attributes.Brand; brand != nil {
		if containsWord(p.Name, *brand) || containsWord(p.Type, *brand) {
			confidence += brandWeight
		}
	}

	if typ := intent.Attributes.Type; typ != nil {
		if containsWord(p.Type, *typ) || containsWord(p.Name, *typ) {
			confidence += typeWeight
		}
	}

	if color := intent.Attributes.Color; color != nil {
		if strings.EqualFold(strings.TrimSpace(p.Color), strings.TrimSpace(*color)) {
			confidence += colorWeight
		}
	}

	if len(intent.Keywords) > 0 {
		matched := 0
		for _, keyword := range intent.Keywords {
			if containsWord(p.Name, keyword) {
				matched++
			}
		}
		confidence += nameWeight * float64(matched) / float64(len(intent.Keywords))
	}

	confidence = math.Max(0.0, math.Min(1.0, confidence))
	return math.Round(confidence*1000) / 1000
}

// ScoreBatch scores every candidate, drops those below minConfidence and
// orders the rest by score descending, ties broken by article id ascending.
func ScoreBatch(candidates []models.Product, intent models.ParsedIntent, minConfidence float64) []models.Product {
	scored := make([]models.Product, 0, len(candidates))
	for _, p := range candidates {
		p.ConfidenceScore = Score(p, intent)
		if p.ConfidenceScore >= minConfidence {
			scored = append(scored, p)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].ConfidenceScore != scored[j].ConfidenceScore {
			return scored[i].ConfidenceScore > scored[j].ConfidenceScore
		}
		return scored[i].ArticleID < scored[j].ArticleID
	})
	return scored
}
