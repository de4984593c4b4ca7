package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration
type Config struct {
	Port          string
	Env           string
	LogLevel      string

	// Persistent store (Redis)
	RedisAddr     string
	RedisPassword string
	RedisTLS      bool

	// Admin panel credentials. The verification mechanism is pluggable;
	// the default deployment ships with a single static pair.
	AdminUsername string
	AdminPassword string

	// Studio identity used in drafted messages.
	StudioName  string
	BraiderName string

	// Timezone that resolves "today" and "current hour" for availability.
	StudioTimezone string

	// Defaults applied to online bookings when no settings snapshot exists.
	DefaultPrice           float64
	DefaultDurationMinutes int

	// AI copy drafting (Gemini). Empty API key disables the networked
	// drafter and falls back to deterministic templates.
	GeminiAPIKey  string
	GeminiModelID string

	CORSAllowedOrigins []string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisTLS:      getEnvAsBool("REDIS_TLS", false),

		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin"),

		StudioName:  getEnv("STUDIO_NAME", "Studio Trigueira Braids"),
		BraiderName: getEnv("BRAIDER_NAME", "Vitória Trigueira"),

		StudioTimezone: getEnv("STUDIO_TIMEZONE", "America/Sao_Paulo"),

		DefaultPrice:           getEnvAsFloat("DEFAULT_PRICE", 250),
		DefaultDurationMinutes: getEnvAsInt("DEFAULT_DURATION_MINUTES", 240),

		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModelID: getEnv("GEMINI_MODEL_ID", "gemini-2.5-flash"),

		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", nil),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsFloat retrieves an environment variable as a float or returns a default value
func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	raw := strings.TrimSpace(getEnv(key, ""))
	if raw == "" {
		return defaultValue
	}
	var values []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
