package config

import "os"

// Config holds application configuration loaded from the environment.
type Config struct {
	DatabaseURL  string
	GeminiAPIKey string
	GeminiModel  string
	ListenAddr   string
}

// Load reads configuration from environment variables. Everything except
// DATABASE_URL has a default; the caller decides whether missing values are
// fatal.
func Load() Config {
	cfg := Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  os.Getenv("GEMINI_MODEL"),
		ListenAddr:   os.Getenv("LISTEN_ADDR"),
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = "gemini-2.5-flash-lite"
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":3000"
	}
	return cfg
}
