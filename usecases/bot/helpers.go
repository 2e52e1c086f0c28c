package bot

import (
	"fmt"
	"strings"

	"ocbot/models"
	"ocbot/utils"
)

// discordMessageLimit is the platform cap on message content length.
const discordMessageLimit = 2000

const reminderNotificationText = "Hello, you haven't replied in a while.\n" +
	"Please reply to this message, press ❌ to delete this message."

// reminderPresets maps the accepted cooldown arguments to minutes.
// "none" disables the reminder and is handled by the command router.
var reminderPresets = map[string]int{
	"1m":  1,
	"5m":  5,
	"15m": 15,
	"30m": 30,
	"1h":  60,
	"3h":  3 * 60,
	"6h":  6 * 60,
	"12h": 12 * 60,
	"24h": 24 * 60,
	"48h": 2 * 24 * 60,
	"1w":  7 * 24 * 60,
}

var reminderPresetOrder = []string{"1m", "5m", "15m", "30m", "1h", "3h", "6h", "12h", "24h", "48h", "1w"}

func reminderPresetList() string {
	return strings.Join(reminderPresetOrder, ", ") + ", None"
}

// reply sends a trimmed, mention-escaped reply to the triggering message.
func (u *BotUseCase) reply(event models.MessageEvent, content string) error {
	content = utils.TruncateRunes(utils.EscapeMentions(content), discordMessageLimit)
	_, err := u.discordClient.ReplyToMessage(event.ChannelID, event.MessageID, content)
	if err != nil {
		return fmt.Errorf("failed to reply in channel %s: %w", event.ChannelID, err)
	}
	return nil
}

func formatCharacterSummary(character *models.Character) string {
	return fmt.Sprintf("`%s` %s", character.ID, character.DisplayName())
}

func formatCharacterSheet(character *models.Character) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n", character.DisplayName())
	fmt.Fprintf(&b, "ID: `%s`\n", character.ID)
	fmt.Fprintf(&b, "Owner: <@%s>\n", character.UserID)
	if created := character.CreationTime(); !created.IsZero() {
		fmt.Fprintf(&b, "Created: <t:%d:D>\n", created.Unix())
	}
	if character.Server != "" {
		fmt.Fprintf(&b, "Server: %s\n", character.Server)
	}
	fmt.Fprintf(&b, "\n%s", character.Description)
	return b.String()
}

func formatReminderList(reminders []*models.ReminderInfo) string {
	if len(reminders) == 0 {
		return "You have no active reminders."
	}

	var b strings.Builder
	b.WriteString("Your active reminders:\n")
	for _, reminder := range reminders {
		fmt.Fprintf(&b, "- <#%s>: every %d minutes", reminder.ChannelID, reminder.CooldownMinutes)
		if next := reminder.NextFire(); !next.IsZero() {
			fmt.Fprintf(&b, " (next: <t:%d:R>)", next.Unix())
		}
		b.WriteString("\n")
	}
	return b.String()
}
