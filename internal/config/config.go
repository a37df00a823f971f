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
		DBName:     getEnvOrDefault("DB_NAME", "court-planner.db"),
		Port:       getEnvOrDefault("PORT", "8080"),
		ClubFile:   getEnvOrDefault("CLUB_FILE", "club.yaml"),
		AdminToken: getEnvOrDefault("ADMIN_TOKEN", ""),
		Slack: SlackConfig{
			Token:         getEnv("SLACK_BOT_TOKEN"),
			ChannelID:     getEnv("SLACK_CHANNEL_ID"),
			SigningSecret: getEnv("SLACK_SIGNING_SECRET"),
		},
		Turso: TursoConfig{
			PrimaryURL: getEnvOrDefault("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvOrDefault("TURSO_AUTH_TOKEN", ""),
		},
		Inngest: InngestConfig{
			AppID:      getEnvOrDefault("INNGEST_APP_ID", ""),
			SigningKey: getEnvOrDefault("INNGEST_SIGNING_KEY", ""),
			EventKey:   getEnvOrDefault("INNGEST_EVENT_KEY", ""),
		},
		ProjectID: getEnv("GCP_PROJECT"),
	}
	if cfg.AdminToken == "" {
		log.Warn("ADMIN_TOKEN is not set; admin routes will reject every request")
	}
	return cfg
}

func getEnvOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
