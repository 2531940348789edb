package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"shopsight/models"
)

const insightPrompt = `You are a business analyst for an e-commerce retailer. Analyze this sales data and generate 2-3 actionable insights.

Data: %s

Identify trends, highlight peak periods, and give concrete recommendations. Professional but conversational tone, 2-3 sentences total.`

// InsightGenerator produces the narrative summary of aggregated sales
// metrics. Like the parser, it never surfaces an error: failures fall back
// to a deterministic local summary.
type InsightGenerator struct {
	apiKey string
	model  string
}

func NewInsightGenerator(apiKey, model string) *InsightGenerator {
	if model == "" {
		model = "gemini-2.5-flash-lite"
	}
	return &InsightGenerator{apiKey: apiKey, model: model}
}

// Generate builds the insight text for the matched products and their
// aggregated sales data.
func (g *InsightGenerator) Generate(ctx context.Context, products []models.Product, sales *models.SalesData) *models.Insights {
	insights, err := g.generateLLM(ctx, products, sales)
	if err != nil {
		log.Printf("⚠️ [INSIGHTS] Generation failed, using fallback summary: %v", err)
		return fallbackInsights(sales)
	}
	return insights
}

func (g *InsightGenerator) generateLLM(ctx context.Context, products []models.Product, sales *models.SalesData) (*models.Insights, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("no API key configured")
	}

	peakDate, peakRevenue := peakPeriod(sales.Timeline)
	names := make([]string, 0, 5)
	for _, p := range products {
		names = append(names, p.Name)
		if len(names) == 5 {
			break
		}
	}

	contextJSON, err := json.Marshal(map[string]interface{}{
		"products":           names,
		"total_revenue":      sales.Summary.TotalRevenue,
		"total_transactions": sales.Summary.TotalTransactions,
		"date_range":         sales.Summary.DateRange,
		"peak_period":        peakDate,
		"peak_revenue":       peakRevenue,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize context: %w", err)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create AI client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)
	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(insightPrompt, contextJSON)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate insights: %w", err)
	}

	text := ResponseText(resp)
	if text == "" {
		return nil, fmt.Errorf("no text content received")
	}

	return &models.Insights{
		Text:        text,
		KeyFindings: keyFindings(sales, peakDate),
	}, nil
}

// fallbackInsights is the deterministic local summary used when the
// external call fails.
func fallbackInsights(sales *models.SalesData) *models.Insights {
	revenue := sales.Summary.TotalRevenue
	transactions := sales.Summary.TotalTransactions
	avgValue := 0.0
	if transactions > 0 {
		avgValue = revenue / float64(transactions)
	}
	return &models.Insights{
		Text: fmt.Sprintf("Products generated $%.2f in revenue across %d transactions.", revenue, transactions),
		KeyFindings: []string{
			fmt.Sprintf("Total revenue: $%.2f", revenue),
			fmt.Sprintf("Total transactions: %d", transactions),
			fmt.Sprintf("Average transaction value: $%.2f", avgValue),
		},
	}
}

func keyFindings(sales *models.SalesData, peakDate string) []string {
	return []string{
		fmt.Sprintf("Total revenue: $%.2f", sales.Summary.TotalRevenue),
		fmt.Sprintf("Peak sales in %s", peakDate),
		fmt.Sprintf("%d total transactions", sales.Summary.TotalTransactions),
	}
}

func peakPeriod(timeline []models.SalesDataPoint) (string, float64) {
	peakDate := "N/A"
	peakRevenue := 0.0
	for _, point := range timeline {
		if point.Revenue > peakRevenue {
			peakRevenue = point.Revenue
			peakDate = point.Date
		}
	}
	return peakDate, peakRevenue
}
