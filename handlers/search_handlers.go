package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"shopsight/analytics"
	"shopsight/metrics"
	"shopsight/models"
	"shopsight/utils"
)

// HandleSearch processes a natural-language product search: parse intent,
// resolve the scored candidate page and the full matched-id set, then fan
// out the independent analytics branches before assembling the response.
// POST /api/search
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	started := time.Now()

	var req models.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	req.ApplyDefaults()
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	var rangeStart, rangeEnd *time.Time
	if req.DateRange != nil {
		if req.DateRange.Start != "" {
			t, err := utils.ParseDate(req.DateRange.Start)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid date_range.start format"})
			}
			rangeStart = &t
		}
		if req.DateRange.End != "" {
			t, err := utils.ParseDate(req.DateRange.End)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid date_range.end format"})
			}
			rangeEnd = &t
		}
	}

	ctx := c.UserContext()

	// Step 1: parse the query. Parser failures degrade to the keyword
	// fallback and never fail the request.
	parsed := h.parser.Parse(ctx, req.Query)
	llmCalls := 1
	if parsed.Source == models.IntentSourceFallback {
		metrics.IntentFallbacksTotal.Inc()
	}

	// Step 2: scored, paginated candidates.
	products, total, err := h.engine.SearchWithConfidence(ctx, parsed, req.Page, req.PageSize, *req.MinConfidence)
	if err != nil {
		return respondError(c, err)
	}

	// Step 3: the full matched-id set must be resolved before any
	// analytics query, since those are parameterized by it.
	articleIDs, err := h.engine.AllArticleIDsWithConfidence(ctx, parsed, *req.MinConfidence)
	if err != nil {
		return respondError(c, err)
	}

	resp := models.SearchResponse{
		Query:       req.Query,
		ParsedQuery: parsed,
		Products:    products,
		Pagination:  utils.CreatePagination(total, req.Page, req.PageSize),
	}

	// Step 4: the sales branch (timeline, trend, forecast) and the segment
	// branch share nothing beyond the resolved id set; run them
	// concurrently and join before assembly.
	type salesResult struct {
		sales    *models.SalesData
		trend    *models.SalesTrend
		forecast *models.Forecast
		err      error
	}
	type segmentResult struct {
		segments *models.SegmentResult
		err      error
	}

	salesCh := make(chan salesResult, 1)
	segmentCh := make(chan segmentResult, 1)

	go func() {
		var res salesResult
		if *req.IncludeSales && len(articleIDs) > 0 {
			res.sales, res.err = h.analyzer.SalesHistory(ctx, articleIDs, rangeStart, rangeEnd, req.Granularity)
			if res.err != nil {
				salesCh <- res
				return
			}
		}
		if *req.IncludeSalesTrend && len(articleIDs) > 0 {
			res.trend, res.err = h.analyzer.SalesTrend(ctx, articleIDs)
			if res.err != nil {
				salesCh <- res
				return
			}
		}
		if req.IncludeForecast && res.sales != nil {
			res.forecast = analytics.Predict(res.sales.Timeline, analytics.DefaultForecastPeriods)
		}
		salesCh <- res
	}()

	go func() {
		var res segmentResult
		if req.IncludeSegments && len(articleIDs) > 0 {
			res.segments, res.err = h.analyzer.Segments(ctx, articleIDs)
		}
		segmentCh <- res
	}()

	salesRes := <-salesCh
	segmentRes := <-segmentCh
	if salesRes.err != nil {
		return respondError(c, salesRes.err)
	}
	if segmentRes.err != nil {
		return respondError(c, segmentRes.err)
	}

	resp.SalesData = salesRes.sales
	resp.SalesTrend = salesRes.trend
	resp.Forecast = salesRes.forecast
	if segmentRes.segments != nil {
		resp.CustomerSegments = segmentRes.segments.Segments
		resp.SegmentsDefault = segmentRes.segments.IsDefault
	}

	// Step 5: narrative insights over the aggregated metrics.
	if resp.SalesData != nil && len(resp.SalesData.Timeline) > 0 {
		resp.Insights = h.insights.Generate(ctx, products, resp.SalesData)
		llmCalls++
	}

	elapsed := time.Since(started)
	resp.Metadata = map[string]interface{}{
		"processing_time_ms": elapsed.Milliseconds(),
		"product_count":      len(products),
		"llm_calls":          llmCalls,
	}

	metrics.SearchesTotal.Inc()
	metrics.SearchDuration.Observe(elapsed.Seconds())
	log.Printf("✅ [SEARCH] %q: %d/%d products, page %d/%d, %s, %d LLM calls",
		req.Query, len(products), total, req.Page, resp.Pagination.TotalPages, elapsed, llmCalls)

	return c.JSON(resp)
}
