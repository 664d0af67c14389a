package config

import (
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// DefaultLogoMaxBytes is the upload ceiling applied when LOGO_MAX_BYTES is
// not set. Uploads larger than this are rejected before any network call.
const DefaultLogoMaxBytes = 5 << 20

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}

	getEnvOr := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return fallback
	}

	maxBytes := int64(DefaultLogoMaxBytes)
	if raw, ok := os.LookupEnv("LOGO_MAX_BYTES"); ok {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			log.Fatalf("Error: LOGO_MAX_BYTES must be a positive integer, got %q", raw)
		}
		maxBytes = parsed
	}

	cfg := Config{
		DBName:  getEnv("DB_NAME"),
		Port:    getEnv("PORT"),
		BaseURL: getEnvOr("BASE_URL", "http://localhost:"+getEnvOr("PORT", "8080")),
		Turso: TursoConfig{
			PrimaryURL: getEnvOr("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvOr("TURSO_AUTH_TOKEN", ""),
		},
		Slack: SlackConfig{
			Token:     getEnv("SLACK_BOT_TOKEN"),
			ChannelID: getEnv("SLACK_CHANNEL_ID"),
		},
		ProjectID: getEnv("GCP_PROJECT"),
		Logo: LogoConfig{
			Dir:      getEnvOr("LOGO_DIR", "./logos"),
			MaxBytes: maxBytes,
		},
	}
	return cfg
}
