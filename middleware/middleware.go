package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// RequestID tags every request with a UUID for log correlation.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Generator: uuid.NewString,
	})
}

// RequestLogger logs method, path, status and latency for each request.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		started := time.Now()
		err := c.Next()
		log.Printf("📡 [HTTP] %s %s -> %d (%s) reqid=%v",
			c.Method(), c.Path(), c.Response().StatusCode(), time.Since(started), c.Locals("requestid"))
		return err
	}
}
