package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	dbtx "ocbot/db/tx"
	"ocbot/models"
)

type PostgresRemindersRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for reminders table
var remindersColumns = []string{
	"user_id",
	"channel_id",
	"guild_id",
	"cooldown_minutes",
	"last_message_id",
	"notified_already",
	"created_at",
	"updated_at",
}

func NewPostgresRemindersRepository(db *sqlx.DB, schema string) *PostgresRemindersRepository {
	return &PostgresRemindersRepository{db: db, schema: schema}
}

// ListReminders returns every persisted reminder. Used once at startup to
// seed the in-memory registry.
func (r *PostgresRemindersRepository) ListReminders(ctx context.Context) ([]*models.ReminderInfo, error) {
	db := dbtx.GetTransactional(ctx, r.db)
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.reminders
		ORDER BY channel_id ASC, user_id ASC`,
		strings.Join(remindersColumns, ", "), r.schema)

	var reminders []models.ReminderInfo
	err := db.SelectContext(ctx, &reminders, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}

	result := make([]*models.ReminderInfo, len(reminders))
	for i := range reminders {
		result[i] = &reminders[i]
	}

	return result, nil
}

// UpsertReminder replaces the reminder identified by the
// (user, channel, guild) triple, creating it when absent.
func (r *PostgresRemindersRepository) UpsertReminder(ctx context.Context, reminder *models.ReminderInfo) error {
	db := dbtx.GetTransactional(ctx, r.db)
	query := fmt.Sprintf(`
		INSERT INTO %s.reminders
			(user_id, channel_id, guild_id, cooldown_minutes, last_message_id, notified_already, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (user_id, channel_id, guild_id) DO UPDATE SET
			cooldown_minutes = EXCLUDED.cooldown_minutes,
			last_message_id = EXCLUDED.last_message_id,
			notified_already = EXCLUDED.notified_already,
			updated_at = NOW()`,
		r.schema)

	_, err := db.ExecContext(
		ctx,
		query,
		reminder.UserID,
		reminder.ChannelID,
		reminder.GuildID,
		reminder.CooldownMinutes,
		reminder.LastMessageID,
		reminder.NotifiedAlready,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert reminder: %w", err)
	}

	return nil
}

// UpdateReminderLastMessage records a qualifying message: the last observed
// message moves forward and the notified flag resets in the same write.
func (r *PostgresRemindersRepository) UpdateReminderLastMessage(
	ctx context.Context,
	userID, channelID, guildID, lastMessageID string,
) error {
	db := dbtx.GetTransactional(ctx, r.db)
	query := fmt.Sprintf(`
		UPDATE %s.reminders
		SET last_message_id = $1, notified_already = FALSE, updated_at = NOW()
		WHERE user_id = $2 AND channel_id = $3 AND guild_id = $4`,
		r.schema)

	_, err := db.ExecContext(ctx, query, lastMessageID, userID, channelID, guildID)
	if err != nil {
		return fmt.Errorf("failed to update reminder last message: %w", err)
	}

	return nil
}

func (r *PostgresRemindersRepository) UpdateReminderNotified(
	ctx context.Context,
	userID, channelID, guildID string,
	notified bool,
) error {
	db := dbtx.GetTransactional(ctx, r.db)
	query := fmt.Sprintf(`
		UPDATE %s.reminders
		SET notified_already = $1, updated_at = NOW()
		WHERE user_id = $2 AND channel_id = $3 AND guild_id = $4`,
		r.schema)

	_, err := db.ExecContext(ctx, query, notified, userID, channelID, guildID)
	if err != nil {
		return fmt.Errorf("failed to update reminder notified flag: %w", err)
	}

	return nil
}

func (r *PostgresRemindersRepository) DeleteReminder(
	ctx context.Context,
	userID, channelID, guildID string,
) (bool, error) {
	db := dbtx.GetTransactional(ctx, r.db)
	query := fmt.Sprintf(`
		DELETE FROM %s.reminders
		WHERE user_id = $1 AND channel_id = $2 AND guild_id = $3`,
		r.schema)

	result, err := db.ExecContext(ctx, query, userID, channelID, guildID)
	if err != nil {
		return false, fmt.Errorf("failed to delete reminder: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// DeleteRemindersByChannel cascades removal when a watched channel
// disappears.
func (r *PostgresRemindersRepository) DeleteRemindersByChannel(
	ctx context.Context,
	channelID string,
) (int64, error) {
	db := dbtx.GetTransactional(ctx, r.db)
	query := fmt.Sprintf(`
		DELETE FROM %s.reminders
		WHERE channel_id = $1`,
		r.schema)

	result, err := db.ExecContext(ctx, query, channelID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete reminders for channel: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}
