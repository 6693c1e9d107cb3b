package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	defaultMatchRecordedTopic = "match-recorded"
	defaultDataDragonURL      = "https://ddragon.leagueoflegends.com"
	defaultDataDragonLocale   = "en_US"
)

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

	cfg := Config{
		DBName:   getEnv("DB_NAME"),
		Port:     getEnv("PORT"),
		LogLevel: getEnvOr("LOG_LEVEL", "info"),
		Turso: TursoConfig{
			PrimaryURL: os.Getenv("TURSO_PRIMARY_URL"),
			AuthToken:  os.Getenv("TURSO_AUTH_TOKEN"),
		},
		Slack: SlackConfig{
			Token:         os.Getenv("SLACK_BOT_TOKEN"),
			ChannelID:     os.Getenv("SLACK_CHANNEL_ID"),
			SigningSecret: os.Getenv("SLACK_SIGNING_SECRET"),
		},
		ProjectID: os.Getenv("GCP_PROJECT"),
		PubSub: PubSubConfig{
			MatchRecordedTopic: getEnvOr("PUBSUB_TOPIC", defaultMatchRecordedTopic),
		},
		Champions: ChampionsConfig{
			BaseURL:  getEnvOr("DDRAGON_BASE_URL", defaultDataDragonURL),
			Locale:   getEnvOr("DDRAGON_LOCALE", defaultDataDragonLocale),
			Validate: getBool("CHAMPION_VALIDATION"),
		},
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
	return cfg
}

func getEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warn("Ignoring invalid boolean environment variable", "key", key, "value", v)
		return false
	}
	return b
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
