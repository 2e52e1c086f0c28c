package reminders

import (
	"context"
	"fmt"
	"log"

	"ocbot/db"
	"ocbot/models"
)

// RemindersService keeps the live reminder registry in memory and mirrors
// every mutation to Postgres. The registry is authoritative: a failed
// persistence write is logged and the in-memory state stands, so reminders
// keep working until the next restart even when the database is down.
type RemindersService struct {
	registry      *registry
	remindersRepo *db.PostgresRemindersRepository
}

func NewRemindersService(repo *db.PostgresRemindersRepository) *RemindersService {
	return &RemindersService{
		registry:      newRegistry(),
		remindersRepo: repo,
	}
}

func (s *RemindersService) LoadFromStore(ctx context.Context) error {
	log.Printf("📋 Starting to load reminders from storage")

	reminders, err := s.remindersRepo.ListReminders(ctx)
	if err != nil {
		return fmt.Errorf("failed to load reminders: %w", err)
	}

	for _, reminder := range reminders {
		s.registry.set(reminder)
	}

	log.Printf("📋 Completed successfully - loaded %d reminders", len(reminders))
	return nil
}

func (s *RemindersService) SetReminder(
	ctx context.Context,
	userID, channelID, guildID string,
	cooldownMinutes int,
) (*models.ReminderInfo, error) {
	log.Printf("📋 Starting to set reminder for user: %s in channel: %s (%d min)", userID, channelID, cooldownMinutes)

	if userID == "" || channelID == "" || guildID == "" {
		return nil, fmt.Errorf("user_id, channel_id and guild_id cannot be empty")
	}
	if cooldownMinutes <= 0 {
		return nil, fmt.Errorf("cooldown must be positive")
	}

	// A brand new reminder starts with an empty countdown: LastMessageID
	// stays empty until RecordMessage sees a message. Updating an existing
	// reminder only changes the cooldown; the registry keeps the tracked
	// message and notified flag.
	stored := s.registry.set(&models.ReminderInfo{
		UserID:          userID,
		ChannelID:       channelID,
		GuildID:         guildID,
		CooldownMinutes: cooldownMinutes,
	})

	if err := s.remindersRepo.UpsertReminder(ctx, stored); err != nil {
		log.Printf("⚠️ Failed to persist reminder for user %s in channel %s: %v", userID, channelID, err)
	}

	log.Printf("📋 Completed successfully - reminder set for user %s in channel %s", userID, channelID)
	return stored, nil
}

func (s *RemindersService) ClearReminder(ctx context.Context, userID, channelID, guildID string) (bool, error) {
	log.Printf("📋 Starting to clear reminder for user: %s in channel: %s", userID, channelID)

	removed := s.registry.remove(userID, channelID)

	if _, err := s.remindersRepo.DeleteReminder(ctx, userID, channelID, guildID); err != nil {
		log.Printf("⚠️ Failed to delete persisted reminder for user %s in channel %s: %v", userID, channelID, err)
	}

	log.Printf("📋 Completed successfully - cleared reminder for user %s: %t", userID, removed)
	return removed, nil
}

func (s *RemindersService) RecordMessage(ctx context.Context, userID, channelID, messageID string) (bool, error) {
	tracked := s.registry.recordMessage(userID, channelID, messageID)
	if !tracked {
		return false, nil
	}

	reminder, ok := s.registry.get(userID, channelID)
	if !ok {
		return false, nil
	}

	err := s.remindersRepo.UpdateReminderLastMessage(ctx, userID, channelID, reminder.GuildID, messageID)
	if err != nil {
		log.Printf("⚠️ Failed to persist last message for user %s in channel %s: %v", userID, channelID, err)
	}

	return true, nil
}

func (s *RemindersService) MarkNotified(ctx context.Context, userID, channelID string) error {
	if !s.registry.markNotified(userID, channelID) {
		return fmt.Errorf("no reminder registered for user %s in channel %s", userID, channelID)
	}

	reminder, ok := s.registry.get(userID, channelID)
	if ok {
		err := s.remindersRepo.UpdateReminderNotified(ctx, userID, channelID, reminder.GuildID, true)
		if err != nil {
			log.Printf("⚠️ Failed to persist notified flag for user %s in channel %s: %v", userID, channelID, err)
		}
	}

	return nil
}

func (s *RemindersService) PurgeChannel(ctx context.Context, channelID string) error {
	log.Printf("📋 Starting to purge reminders for channel: %s", channelID)

	count := s.registry.removeChannel(channelID)

	if _, err := s.remindersRepo.DeleteRemindersByChannel(ctx, channelID); err != nil {
		log.Printf("⚠️ Failed to delete persisted reminders for channel %s: %v", channelID, err)
	}

	log.Printf("📋 Completed successfully - purged %d reminders for channel %s", count, channelID)
	return nil
}

func (s *RemindersService) TrackedChannels() []string {
	return s.registry.trackedChannels()
}

func (s *RemindersService) RemindersForChannel(channelID string) []*models.ReminderInfo {
	return s.registry.remindersForChannel(channelID)
}

func (s *RemindersService) ListForUser(userID string) []*models.ReminderInfo {
	return s.registry.listForUser(userID)
}

func (s *RemindersService) HasReminder(userID, channelID string) bool {
	_, ok := s.registry.get(userID, channelID)
	return ok
}
