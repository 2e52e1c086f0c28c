package bot

import (
	"context"
	"fmt"
	"log"

	"ocbot/models"
)

// ProcessMessageEvent handles an inbound message: command routing, reminder
// tracking and webhook echo attribution.
func (u *BotUseCase) ProcessMessageEvent(ctx context.Context, event models.MessageEvent) error {
	if event.GuildID == "" {
		return nil
	}

	// Webhook relays repost user messages under their own identity. If a
	// recent original matches, the echo becomes the tracked last message
	// for the original author.
	if event.IsProxy() {
		userID, ok := u.echoes.attribute(event)
		if !ok {
			return nil
		}
		log.Printf("🔍 Attributed webhook message %s to user %s", event.MessageID, userID)
		if _, err := u.remindersService.RecordMessage(ctx, userID, event.ChannelID, event.MessageID); err != nil {
			return fmt.Errorf("failed to record proxied message: %w", err)
		}
		return nil
	}

	if event.Bot {
		return nil
	}

	handled, cmdErr := u.HandleCommand(ctx, event)
	if !handled {
		u.echoes.observe(event)
	}

	// Command invocations count as activity too: any message from the user
	// in a watched channel resets the countdown.
	tracked, err := u.remindersService.RecordMessage(ctx, event.UserID, event.ChannelID, event.MessageID)
	if err != nil {
		return fmt.Errorf("failed to record message: %w", err)
	}
	if tracked {
		log.Printf("🔍 Reminder timer reset for user %s in channel %s", event.UserID, event.ChannelID)
	}
	return cmdErr
}

// ProcessReactionEvent deletes a reminder notification when its recipient
// reacts with the dismiss emoji.
func (u *BotUseCase) ProcessReactionEvent(ctx context.Context, event models.ReactionEvent) error {
	if event.EmojiName != "❌" {
		return nil
	}

	botUser, err := u.discordClient.GetBotUser()
	if err != nil {
		return fmt.Errorf("failed to get bot user: %w", err)
	}
	if event.UserID == botUser.ID || event.MessageAuthorID != botUser.ID {
		return nil
	}

	if err := u.discordClient.DeleteMessage(event.ChannelID, event.MessageID); err != nil {
		return fmt.Errorf("failed to delete dismissed notification: %w", err)
	}
	log.Printf("🔍 Deleted dismissed notification %s in channel %s", event.MessageID, event.ChannelID)
	return nil
}

// ProcessChannelDelete purges all reminder state for a deleted channel.
func (u *BotUseCase) ProcessChannelDelete(ctx context.Context, event models.ChannelDeleteEvent) error {
	log.Printf("📋 Channel %s deleted - purging its reminders", event.ChannelID)
	if err := u.remindersService.PurgeChannel(ctx, event.ChannelID); err != nil {
		return fmt.Errorf("failed to purge reminders for deleted channel: %w", err)
	}
	return nil
}
