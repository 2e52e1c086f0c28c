package testutils

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"

	"ocbot/config"
	"ocbot/core"
	"ocbot/db"
	"ocbot/models"
)

// LoadTestConfig loads configuration for tests from environment variables
func LoadTestConfig() (*config.AppConfig, error) {
	// Try to load environment variables from various possible locations
	_ = godotenv.Load("../.env.test") // From services/ directory
	_ = godotenv.Load(".env.test")    // From root directory
	_ = godotenv.Load()               // Default .env file

	databaseURL := os.Getenv("DB_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DB_URL is not set")
	}

	databaseSchema := os.Getenv("DB_SCHEMA")
	if databaseSchema == "" {
		return nil, fmt.Errorf("DB_SCHEMA is not set")
	}

	return &config.AppConfig{
		DatabaseURL:    databaseURL,
		DatabaseSchema: databaseSchema,
	}, nil
}

// CreateTestCharacter creates a character with unique owner and guild IDs to
// avoid constraint violations between tests
func CreateTestCharacter(t *testing.T, charactersRepo *db.PostgresCharactersRepository, name, description string) *models.Character {
	character := &models.Character{
		ID:          core.NewID(core.CharacterIDPrefix),
		UserID:      "test-user-" + uuid.New().String(),
		GuildID:     "test-guild-" + uuid.New().String(),
		Name:        name,
		Description: description,
	}
	err := charactersRepo.CreateCharacter(context.Background(), character)
	require.NoError(t, err, "Failed to create test character")
	return character
}

// CreateTestReminder persists a reminder for unique test IDs
func CreateTestReminder(t *testing.T, remindersRepo *db.PostgresRemindersRepository, cooldownMinutes int) *models.ReminderInfo {
	reminder := &models.ReminderInfo{
		UserID:          "test-user-" + uuid.New().String(),
		ChannelID:       "test-channel-" + uuid.New().String(),
		GuildID:         "test-guild-" + uuid.New().String(),
		CooldownMinutes: cooldownMinutes,
	}
	err := remindersRepo.UpsertReminder(context.Background(), reminder)
	require.NoError(t, err, "Failed to create test reminder")
	return reminder
}
