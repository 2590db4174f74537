package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the configuration for the application.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string

	// GeminiAPIKey authenticates against the Gemini API. When empty the
	// itinerary generator reports itself unavailable instead of failing
	// at startup, so the rest of the API keeps working.
	GeminiAPIKey string
	GeminiModel  string

	// StripeSecretKey authenticates against the payment provider.
	// Optional for the same reason as GeminiAPIKey.
	StripeSecretKey string
	StripeAPIURL    string

	CORSOrigins []string
	LogMode     string

	// GenerateTimeout bounds a single itinerary generation call.
	GenerateTimeout time.Duration

	// TripTTL is how long trip records are retained. Zero means forever.
	TripTTL time.Duration
}

// NewFromEnv creates a new Config object from environment variables.
// No variable is required: missing API keys degrade the corresponding
// capability rather than preventing startup.
func NewFromEnv() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.5-pro"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		StripeAPIURL:    getEnv("STRIPE_API_URL", "https://api.stripe.com/v1"),
		CORSOrigins:     splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		LogMode:         getEnv("LOG_MODE", "dev"),
	}

	timeoutSec, err := getEnvInt("GENERATE_TIMEOUT", 120)
	if err != nil {
		return nil, err
	}
	cfg.GenerateTimeout = time.Duration(timeoutSec) * time.Second

	ttlHours, err := getEnvInt("TRIP_TTL", 0)
	if err != nil {
		return nil, err
	}
	cfg.TripTTL = time.Duration(ttlHours) * time.Hour

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvInt parses an integer environment variable, falling back when unset.
func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
