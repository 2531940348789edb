package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"shopsight/models"
)

const parserPrompt = `You are a query parser for e-commerce search. Parse this search query into structured JSON.

Query: "%s"

Extract:
1. Keywords: all important search terms
2. Attributes: brand, type, color, style, gender, department (null when not mentioned)
3. Filters: hard constraints (department, color, price_min, price_max)
4. Intent: what the user wants (product_search, sales_analysis, comparison)

Return a single minified JSON object with this exact structure and nothing else:
{"keywords":["..."],"attributes":{"brand":null,"type":null,"color":null,"style":null,"gender":null,"department":null},"filters":{},"intent":"product_search"}

Example:
Query: "Nike black jacket"
Output: {"keywords":["Nike","black","jacket"],"attributes":{"brand":"Nike","type":"jacket","color":"black","style":null,"gender":null,"department":null},"filters":{},"intent":"product_search"}

Do not include any markdown formatting, backticks, or explanatory text.`

// Parser turns free-text queries into structured search intent via Gemini.
// Any failure of the external call degrades to local keyword extraction;
// the Source field tells callers which variant they got.
type Parser struct {
	apiKey string
	model  string
}

func NewParser(apiKey, model string) *Parser {
	if model == "" {
		model = "gemini-2.5-flash-lite"
	}
	return &Parser{apiKey: apiKey, model: model}
}

// Model reports the configured model name.
func (p *Parser) Model() string {
	return p.model
}

// Configured reports whether the external parser can be called at all.
func (p *Parser) Configured() bool {
	return p.apiKey != ""
}

// Parse extracts keywords, attributes and filters from the query. It never
// returns an error: parser failures are recovered via the keyword fallback
// and must not propagate as subsystem errors.
func (p *Parser) Parse(ctx context.Context, query string) models.ParsedIntent {
	parsed, err := p.parseLLM(ctx, query)
	if err != nil {
		log.Printf("⚠️ [INTENT] Query parsing failed, using keyword fallback: %v", err)
		return FallbackIntent(query)
	}
	parsed.Source = models.IntentSourceParsed
	if parsed.Intent == "" {
		parsed.Intent = "product_search"
	}
	return parsed
}

func (p *Parser) parseLLM(ctx context.Context, query string) (models.ParsedIntent, error) {
	var parsed models.ParsedIntent
	if !p.Configured() {
		return parsed, fmt.Errorf("no API key configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(p.apiKey))
	if err != nil {
		return parsed, fmt.Errorf("failed to create AI client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(p.model)
	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(parserPrompt, query)))
	if err != nil {
		return parsed, fmt.Errorf("failed to parse query: %w", err)
	}

	jsonStr := ExtractJSON(ResponseText(resp))
	if jsonStr == "" {
		return parsed, fmt.Errorf("no JSON object in model response")
	}
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		return parsed, fmt.Errorf("failed to decode parsed intent: %w", err)
	}
	return parsed, nil
}

// FallbackIntent is the documented parser degradation: every word longer
// than two characters becomes a keyword; no attributes, no filters. With no
// attributes, confidence scoring degrades to the name-match component only.
func FallbackIntent(query string) models.ParsedIntent {
	var keywords []string
	for _, word := range strings.Fields(query) {
		if len(word) > 2 {
			keywords = append(keywords, word)
		}
	}
	return models.ParsedIntent{
		Keywords: keywords,
		Intent:   "product_search",
		Source:   models.IntentSourceFallback,
	}
}

// ExtractJSON slices the first top-level JSON object out of a model reply,
// tolerating markdown fences or prose around it.
func ExtractJSON(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return raw[start : end+1]
}

// ResponseText concatenates the text parts of the first candidate.
func ResponseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}
	return text.String()
}
