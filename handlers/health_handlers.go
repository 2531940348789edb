package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HandleHealth reports the health of the service and its dependencies.
// GET /health
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	dbStatus := "connected"
	status := "healthy"

	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()
	if h.db == nil || h.db.Ping(ctx) != nil {
		dbStatus = "disconnected"
		status = "degraded"
	}

	llmStatus := "configured"
	if !h.parser.Configured() {
		llmStatus = "unconfigured"
	}

	return c.JSON(fiber.Map{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"services": fiber.Map{
			"database": dbStatus,
			"llm":      llmStatus,
			"model":    h.parser.Model(),
		},
	})
}
