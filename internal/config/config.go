package config

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
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
		DBName:        getEnv("DB_NAME"),
		MigrationsDir: getEnvOrDefault("MIGRATIONS_DIR", "./migrations"),
		Port:          getEnvOrDefault("PORT", "8080"),
		OddPolicy:     getEnvOrDefault("TOURNAMENT_ODD_POLICY", "reject"),
		Turso: TursoConfig{
			PrimaryURL: os.Getenv("TURSO_PRIMARY_URL"),
			AuthToken:  os.Getenv("TURSO_AUTH_TOKEN"),
		},
		Slack: SlackConfig{
			Token:     os.Getenv("SLACK_BOT_TOKEN"),
			ChannelID: os.Getenv("SLACK_CHANNEL_ID"),
		},
		PubSub: PubSubConfig{
			ProjectID:   os.Getenv("GCP_PROJECT"),
			TopicPrefix: getEnvOrDefault("PUBSUB_TOPIC_PREFIX", "tournament"),
		},
	}
	if cfg.Slack.Token != "" && cfg.Slack.ChannelID == "" {
		log.Fatalf("Error: SLACK_CHANNEL_ID must be set when SLACK_BOT_TOKEN is set.")
	}
	return cfg
}

func getEnvOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
