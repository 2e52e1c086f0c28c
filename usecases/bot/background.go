package bot

import (
	"context"
	"fmt"
	"log"
	"time"

	"ocbot/clients"
	"ocbot/models"
)

// SweepReminders runs one pass over every tracked channel and fires the due
// reminders. Designed to run on a short fixed interval; each reminder fails
// independently and an undeliverable one is retried on the next pass.
func (u *BotUseCase) SweepReminders(ctx context.Context) error {
	now := time.Now().UTC()

	for _, channelID := range u.remindersService.TrackedChannels() {
		channel, err := u.discordClient.GetChannel(channelID)
		if err != nil {
			if clients.IsNotFound(err) {
				log.Printf("⚠️ Channel %s no longer exists - purging its reminders", channelID)
				if err := u.remindersService.PurgeChannel(ctx, channelID); err != nil {
					log.Printf("❌ Failed to purge reminders for channel %s: %v", channelID, err)
				}
				continue
			}
			log.Printf("⚠️ Failed to resolve channel %s, will retry next sweep: %v", channelID, err)
			continue
		}

		for _, reminder := range u.remindersService.RemindersForChannel(channelID) {
			if !reminder.Due(now) {
				continue
			}
			u.fireReminder(ctx, channel, reminder)
		}
	}

	return nil
}

// fireReminder delivers one due notification. Only a successful send (or
// the channel-level fallback after a vanished message) marks the reminder
// notified; permission and transport failures leave it armed.
func (u *BotUseCase) fireReminder(
	ctx context.Context,
	channel *clients.DiscordChannel,
	reminder *models.ReminderInfo,
) {
	member, err := u.discordClient.GetMember(channel.GuildID, reminder.UserID)
	if err == nil && member.Status == clients.DiscordStatusOffline {
		return
	}

	notification, err := u.deliverNotification(channel, reminder)
	if err != nil {
		if clients.IsForbidden(err) {
			log.Printf("⚠️ No permission to notify user %s in channel %s, leaving reminder armed: %v",
				reminder.UserID, channel.ID, err)
		} else {
			log.Printf("⚠️ Failed to notify user %s in channel %s: %v", reminder.UserID, channel.ID, err)
		}
		return
	}

	if err := u.discordClient.AddReaction(notification.ChannelID, notification.MessageID, "❌"); err != nil {
		log.Printf("⚠️ Failed to add dismiss reaction to %s: %v", notification.MessageID, err)
	}

	if err := u.remindersService.MarkNotified(ctx, reminder.UserID, reminder.ChannelID); err != nil {
		log.Printf("❌ Failed to mark reminder notified for user %s: %v", reminder.UserID, err)
	}
	log.Printf("✅ Reminded user %s in channel %s", reminder.UserID, channel.ID)
}

func (u *BotUseCase) deliverNotification(
	channel *clients.DiscordChannel,
	reminder *models.ReminderInfo,
) (*clients.DiscordPostMessageResponse, error) {
	notification, err := u.discordClient.ReplyToMessage(
		channel.ID, reminder.LastMessageID, reminderNotificationText)
	if err == nil {
		return notification, nil
	}
	if !clients.IsNotFound(err) {
		return nil, err
	}

	// The tracked message is gone; fall back to a plain channel message
	// carrying a jump link to where it used to be.
	jumpURL := u.discordClient.MessageJumpURL(channel.GuildID, channel.ID, reminder.LastMessageID)
	content := fmt.Sprintf("Hello <@%s>, you haven't replied in a while.\n"+
		"Please reply to this message, press ❌ to delete this message.\n🔗 %s",
		reminder.UserID, jumpURL)

	notification, err = u.discordClient.PostMessage(channel.ID, clients.DiscordMessageParams{Content: content})
	if err != nil {
		return nil, err
	}
	return notification, nil
}
