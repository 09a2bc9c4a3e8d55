package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName  string
	AppEnv   string
	Port     string
	Timezone string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Security
	JWTSecret string
	JWTExpiry time.Duration

	// Generative model (OpenAI-compatible chat completions endpoint)
	LLMEndpoint string
	LLMAPIKey   string
	LLMModel    string
	LLMTimeout  time.Duration

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		AppName:  envString("APP_NAME", "Planner"),
		AppEnv:   envRequired("APP_ENV"), // Required: 'development' or 'production'
		Port:     envString("PORT", "8090"),
		Timezone: envString("TZ", "UTC"),

		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/planner.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		JWTSecret: envRequired("JWT_SECRET"),
		JWTExpiry: envDuration("JWT_EXPIRY", 168*time.Hour), // 7 days

		LLMEndpoint: envString("LLM_ENDPOINT", ""),
		LLMAPIKey:   envString("LLM_API_KEY", ""),
		LLMModel:    envString("LLM_MODEL", "google/gemma-2-27b-it"),
		LLMTimeout:  envDuration("LLM_TIMEOUT", 25*time.Second),

		SentryDSN: envString("SENTRY_DSN", ""),
	}

	// Production: the planner is useless without a model endpoint
	if cfg.IsProduction() && cfg.LLMEndpoint == "" {
		slog.Error("production deployment requires LLM_ENDPOINT",
			"hint", "set APP_ENV=development to run without a model endpoint")
		os.Exit(1)
	}

	return cfg
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}
