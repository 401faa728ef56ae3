package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName     string
	AppEnv      string
	AppURL      string
	Port        string
	ContentPath string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Security
	JWTSecret string
	JWTExpiry time.Duration

	// AI analysis (Google generative language API)
	GeminiAPIKey     string
	GeminiModel      string
	GeminiEndpoint   string // Overridable for tests and proxies
	GeminiTimeout    time.Duration
	AnalysisMaxBytes int64 // Max resume bytes fetched for analysis

	// Uploads
	MaxCVSize int64

	// Observability (optional)
	SentryDSN string

	// Storage (S3-compatible: MinIO, AWS S3, Cloudflare R2, DigitalOcean Spaces, etc.)
	S3Region              string
	S3Bucket              string
	S3AccessKey           string
	S3SecretKey           string
	S3Endpoint            string        // Optional: for S3-compatible services
	S3PresignExpiryPublic time.Duration // Expiry for resume URLs handed to the analysis pipeline
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName:     envString("APP_NAME", "HackBuddy"),
		AppEnv:      envRequired("APP_ENV"), // Required: 'development' or 'production'
		AppURL:      envString("APP_URL", "http://localhost:8090"),
		Port:        envString("PORT", "8090"),
		ContentPath: envString("CONTENT_PATH", "content"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/hackbuddy.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		// Security
		JWTSecret: envRequired("JWT_SECRET"),
		JWTExpiry: envDuration("JWT_EXPIRY", 168*time.Hour), // 7 days

		// AI analysis
		GeminiAPIKey:     envString("GEMINI_API_KEY", ""),
		GeminiModel:      envString("GEMINI_MODEL", "gemini-pro"),
		GeminiEndpoint:   envString("GEMINI_ENDPOINT", "https://generativelanguage.googleapis.com/v1"),
		GeminiTimeout:    envDuration("GEMINI_TIMEOUT", 60*time.Second),
		AnalysisMaxBytes: envInt64("ANALYSIS_MAX_BYTES", 1<<20),

		// Uploads
		MaxCVSize: envInt64("MAX_CV_SIZE", 10<<20), // 10MB, matches the UI copy

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),

		// Storage (S3-compatible - required for resume uploads)
		S3Region:              envRequired("S3_REGION"),
		S3Bucket:              envString("S3_BUCKET", "user-files"),
		S3AccessKey:           envRequired("S3_ACCESS_KEY"),
		S3SecretKey:           envRequired("S3_SECRET_KEY"),
		S3Endpoint:            envString("S3_ENDPOINT", ""), // Optional: for non-AWS providers
		S3PresignExpiryPublic: envDuration("S3_PRESIGN_EXPIRY_PUBLIC", 168*time.Hour),
	}

	// Production: validate required services
	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction ensures all required services are configured for production
// deployments. Development allows the AI key to be absent; analysis then degrades
// to the placeholder result.
func validateProduction(cfg *Config) {
	if cfg.GeminiAPIKey == "" {
		slog.Error("production deployment requires GEMINI_API_KEY",
			"hint", "set APP_ENV=development to run with placeholder analysis")
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envInt64(key string, def int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
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

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
