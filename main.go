package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"shopsight/config"
	"shopsight/database"
	"shopsight/handlers"
	"shopsight/intent"
	"shopsight/middleware"
	"shopsight/routes"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}
	if cfg.GeminiAPIKey == "" {
		log.Println("GEMINI_API_KEY is not set, query parsing will use the keyword fallback")
	}

	// Initialize database
	db, err := database.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer db.Close()

	parser := intent.NewParser(cfg.GeminiAPIKey, cfg.GeminiModel)
	insights := intent.NewInsightGenerator(cfg.GeminiAPIKey, cfg.GeminiModel)

	app := fiber.New()

	app.Use(cors.New())
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())

	// Setup routes
	routes.SetupRoutes(app, handlers.New(db, parser, insights))

	// Start server
	log.Fatal(app.Listen(cfg.ListenAddr))
}
