package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DiscordConfig struct {
	BotToken        string
	AlertWebhookURL string
}

// IsConfigured returns true if all required Discord configuration is present
func (c DiscordConfig) IsConfigured() bool {
	return c.BotToken != ""
	// Note: AlertWebhookURL is optional
}

type AppConfig struct {
	// Core configuration (always required)
	DatabaseURL    string
	DatabaseSchema string
	Port           string // Optional with default "8080"
	Environment    string
	ServerLogsURL  string

	// How often the reminder sweep runs
	SweepInterval time.Duration

	DiscordConfig DiscordConfig
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	// Core required configuration
	databaseURL, err := getEnvRequired("DB_URL")
	if err != nil {
		return nil, err
	}

	databaseSchema, err := getEnvRequired("DB_SCHEMA")
	if err != nil {
		return nil, err
	}

	sweepSeconds, err := strconv.Atoi(getEnvWithDefault("REMINDER_SWEEP_SECONDS", "5"))
	if err != nil || sweepSeconds <= 0 {
		return nil, fmt.Errorf("REMINDER_SWEEP_SECONDS must be a positive integer")
	}

	config := &AppConfig{
		DatabaseURL:    databaseURL,
		DatabaseSchema: databaseSchema,
		Port:           getEnvWithDefault("PORT", "8080"),
		Environment:    getEnvWithDefault("ENVIRONMENT", "dev"),
		ServerLogsURL:  getEnvWithDefault("SERVER_LOGS_URL", ""),
		SweepInterval:  time.Duration(sweepSeconds) * time.Second,

		DiscordConfig: DiscordConfig{
			BotToken:        os.Getenv("DISCORD_BOT_TOKEN"),
			AlertWebhookURL: os.Getenv("DISCORD_ALERT_WEBHOOK_URL"),
		},
	}

	if config.DiscordConfig.IsConfigured() {
		log.Printf("✅ Discord integration configured")
	} else {
		return nil, fmt.Errorf("DISCORD_BOT_TOKEN is required")
	}

	return config, nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
