package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"shopsight/analytics"
	"shopsight/database"
	"shopsight/intent"
	"shopsight/metrics"
	"shopsight/models"
	"shopsight/search"
)

// Handler bundles the components behind the API. Every component receives
// the store handle explicitly at construction; nothing reaches for a
// global.
type Handler struct {
	db       *database.DB
	validate *validator.Validate
	engine   *search.Engine
	analyzer *analytics.Analyzer
	parser   *intent.Parser
	insights *intent.InsightGenerator
}

func New(db *database.DB, parser *intent.Parser, insights *intent.InsightGenerator) *Handler {
	return &Handler{
		db:       db,
		validate: validator.New(),
		engine:   search.NewEngine(db),
		analyzer: analytics.NewAnalyzer(db),
		parser:   parser,
		insights: insights,
	}
}

// respondError maps the service error taxonomy onto HTTP statuses. Store
// errors abort the whole request; a half-built analytics payload is never
// returned.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrInvalidFilter):
		metrics.SearchErrorsTotal.WithLabelValues("invalid_filter").Inc()
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	case errors.Is(err, models.ErrProductNotFound):
		metrics.SearchErrorsTotal.WithLabelValues("not_found").Inc()
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": err.Error()})
	case errors.Is(err, models.ErrTimeout):
		metrics.SearchErrorsTotal.WithLabelValues("timeout").Inc()
		return c.Status(fiber.StatusGatewayTimeout).JSON(fiber.Map{"success": false, "message": err.Error()})
	case errors.Is(err, models.ErrStoreUnavailable):
		metrics.SearchErrorsTotal.WithLabelValues("store_unavailable").Inc()
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"success": false, "message": err.Error()})
	default:
		metrics.SearchErrorsTotal.WithLabelValues("internal").Inc()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Internal server error"})
	}
}
