package bot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/justinian/dice"

	"ocbot/clients"
	"ocbot/core"
	"ocbot/models"
	"ocbot/statcalc"
)

// commandPrefix starts every text command.
const commandPrefix = "!"

// HandleCommand routes a prefixed message to its command handler. Returns
// false when the message is not a command.
func (u *BotUseCase) HandleCommand(ctx context.Context, event models.MessageEvent) (bool, error) {
	content := strings.TrimSpace(event.Content)
	if !strings.HasPrefix(content, commandPrefix) {
		return false, nil
	}

	name, rest := splitCommand(strings.TrimPrefix(content, commandPrefix))
	log.Printf("📋 Handling command %q from user %s in channel %s", name, event.UserID, event.ChannelID)

	var err error
	switch strings.ToLower(name) {
	case "char":
		err = u.handleCharCommand(ctx, event, rest)
	case "remind":
		err = u.handleRemindCommand(ctx, event, rest)
	case "reminders":
		err = u.handleRemindersCommand(ctx, event)
	case "roll":
		err = u.handleRollCommand(ctx, event, rest)
	case "stats":
		err = u.handleStatsCommand(ctx, event, rest)
	case "size":
		err = u.handleSizeCommand(ctx, event, rest)
	case "ping":
		err = u.reply(event, "Pong!")
	default:
		return false, nil
	}

	if err != nil {
		log.Printf("❌ Command %q failed: %v", name, err)
		// Surface a generic failure instead of leaving the user hanging.
		if replyErr := u.reply(event, "Something went wrong running that command."); replyErr != nil {
			log.Printf("❌ Failed to send error reply: %v", replyErr)
		}
	}
	return true, err
}

func (u *BotUseCase) handleCharCommand(ctx context.Context, event models.MessageEvent, rest string) error {
	sub, args := splitCommand(rest)
	scope := models.CharacterScope{UserID: event.UserID, GuildID: event.GuildID}

	switch strings.ToLower(sub) {
	case "add", "new":
		name, description := splitFirstLine(args)
		if name == "" || description == "" {
			return u.reply(event, "Usage: `!char add <name>` with the character sheet on the following lines.")
		}
		character, err := u.charactersService.CreateCharacter(
			ctx, event.UserID, event.GuildID, name, description, event.GuildID)
		if err != nil {
			return u.reply(event, fmt.Sprintf("Could not create character: %v", err))
		}
		return u.reply(event, fmt.Sprintf("Created %s", formatCharacterSummary(character)))

	case "read", "get", "view":
		character, err := u.resolveForReply(ctx, event, scope, args)
		if err != nil || character == nil {
			return err
		}
		return u.reply(event, formatCharacterSheet(character))

	case "query", "find", "search":
		if strings.TrimSpace(args) == "" {
			return u.reply(event, "Usage: `!char find <name>`")
		}
		// Search spans the whole guild, not just the invoking user.
		matches, err := u.charactersService.SearchCharacters(
			ctx, models.CharacterScope{GuildID: event.GuildID}, args)
		if err != nil {
			return fmt.Errorf("failed to search characters: %w", err)
		}
		if len(matches) == 0 {
			return u.reply(event, fmt.Sprintf("No characters matched %q.", args))
		}
		lines := make([]string, len(matches))
		for i, match := range matches {
			lines[i] = formatCharacterSummary(match)
		}
		return u.reply(event, strings.Join(lines, "\n"))

	case "list":
		characters, err := u.charactersService.ListCharacters(ctx, scope)
		if err != nil {
			return fmt.Errorf("failed to list characters: %w", err)
		}
		if len(characters) == 0 {
			return u.reply(event, "You have no characters registered.")
		}
		lines := make([]string, len(characters))
		for i, character := range characters {
			lines[i] = formatCharacterSummary(character)
		}
		return u.reply(event, strings.Join(lines, "\n"))

	case "rename":
		target, newName := splitCommand(args)
		if target == "" || newName == "" {
			return u.reply(event, "Usage: `!char rename <id|name> <new name>`")
		}
		character, err := u.resolveForReply(ctx, event, scope, target)
		if err != nil || character == nil {
			return err
		}
		renamed, err := u.charactersService.RenameCharacter(ctx, event.UserID, character.ID, newName)
		if err != nil {
			if core.IsNotFoundError(err) {
				return u.reply(event, "You can only rename your own characters.")
			}
			return u.reply(event, fmt.Sprintf("Could not rename character: %v", err))
		}
		return u.reply(event, fmt.Sprintf("Renamed to %s", formatCharacterSummary(renamed)))

	case "desc", "describe":
		target, description := splitFirstLine(args)
		if target == "" || description == "" {
			return u.reply(event, "Usage: `!char desc <id|name>` with the new sheet on the following lines.")
		}
		character, err := u.resolveForReply(ctx, event, scope, target)
		if err != nil || character == nil {
			return err
		}
		updated, err := u.charactersService.UpdateCharacterDescription(ctx, event.UserID, character.ID, description)
		if err != nil {
			if core.IsNotFoundError(err) {
				return u.reply(event, "You can only edit your own characters.")
			}
			return u.reply(event, fmt.Sprintf("Could not update character: %v", err))
		}
		return u.reply(event, fmt.Sprintf("Updated %s", formatCharacterSummary(updated)))

	case "delete", "remove":
		character, err := u.resolveForReply(ctx, event, scope, args)
		if err != nil || character == nil {
			return err
		}
		deleted, err := u.charactersService.DeleteCharacter(ctx, event.UserID, character.ID)
		if err != nil {
			return fmt.Errorf("failed to delete character: %w", err)
		}
		if !deleted {
			return u.reply(event, "You can only delete your own characters.")
		}
		return u.reply(event, fmt.Sprintf("Deleted %s.", character.Name))

	case "deleteall":
		// Bulk wipe runs in one transaction so a mid-way failure leaves the
		// roster untouched.
		var count int64
		err := u.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			var txErr error
			count, txErr = u.charactersService.DeleteAllCharacters(txCtx, event.UserID, event.GuildID)
			return txErr
		})
		if err != nil {
			return fmt.Errorf("failed to delete characters: %w", err)
		}
		return u.reply(event, fmt.Sprintf("Deleted %d characters.", count))

	default:
		return u.reply(event,
			"Character commands: `add`, `read`, `find`, `list`, `rename`, `desc`, `delete`, `deleteall`.")
	}
}

// resolveForReply resolves a character argument and reports lookup failures
// to the user directly. A nil character with nil error means the failure was
// already reported.
func (u *BotUseCase) resolveForReply(
	ctx context.Context,
	event models.MessageEvent,
	scope models.CharacterScope,
	argument string,
) (*models.Character, error) {
	argument = strings.TrimSpace(argument)
	if argument == "" {
		return nil, u.reply(event, "Which character? Give me an ID or a name.")
	}

	character, err := u.charactersService.ResolveCharacter(ctx, scope, argument)
	switch {
	case err == nil:
		return character, nil
	case core.IsNotFoundError(err):
		if errors.Is(err, core.ErrNoCharacters) {
			return nil, u.reply(event, "You have no characters registered.")
		}
		return nil, u.reply(event, fmt.Sprintf("No character matched %q.", argument))
	default:
		return nil, fmt.Errorf("failed to resolve character: %w", err)
	}
}

func (u *BotUseCase) handleRemindCommand(ctx context.Context, event models.MessageEvent, rest string) error {
	preset, channelArg := splitCommand(rest)
	channelID := parseChannelArg(channelArg)
	if channelID == "" {
		channelID = event.ChannelID
	}

	if strings.EqualFold(preset, "none") {
		return u.disableReminder(ctx, event, channelID)
	}

	minutes, ok := reminderPresets[strings.ToLower(preset)]
	if !ok {
		if preset != "" {
			return u.reply(event, fmt.Sprintf("Unknown interval %q. Options: %s.", preset, reminderPresetList()))
		}
		// Bare "!remind" is a toggle: an existing reminder turns off,
		// otherwise the shortest preset arms.
		if u.remindersService.HasReminder(event.UserID, channelID) {
			return u.disableReminder(ctx, event, channelID)
		}
		minutes = 1
	}

	// No send rights in the target channel means no reminder: the sweep
	// could never deliver there anyway.
	allowed, err := u.discordClient.CanSendMessages(channelID, event.UserID)
	if err != nil {
		return fmt.Errorf("failed to check channel permissions: %w", err)
	}
	if !allowed {
		return u.reply(event, "You cannot send messages in that channel, so no reminder was set.")
	}

	if _, err := u.remindersService.SetReminder(ctx, event.UserID, channelID, event.GuildID, minutes); err != nil {
		return fmt.Errorf("failed to set reminder: %w", err)
	}
	return u.reply(event, fmt.Sprintf(
		"From now on, I will remind you every %d minutes to reply if you haven't already.", minutes))
}

func (u *BotUseCase) disableReminder(ctx context.Context, event models.MessageEvent, channelID string) error {
	removed, err := u.remindersService.ClearReminder(ctx, event.UserID, channelID, event.GuildID)
	if err != nil {
		return fmt.Errorf("failed to clear reminder: %w", err)
	}
	if !removed {
		return u.reply(event, "You had no reminder for this channel.")
	}
	return u.reply(event, "Reminder has been disabled for this channel.")
}

func (u *BotUseCase) handleRemindersCommand(ctx context.Context, event models.MessageEvent) error {
	reminders := u.remindersService.ListForUser(event.UserID)
	return u.reply(event, formatReminderList(reminders))
}

func (u *BotUseCase) handleRollCommand(ctx context.Context, event models.MessageEvent, rest string) error {
	expression := strings.TrimSpace(rest)
	if expression == "" {
		expression = "1d20"
	}

	result, _, err := dice.Roll(expression)
	if err != nil {
		return u.reply(event, fmt.Sprintf("Invalid expression %q.", expression))
	}
	return u.reply(event, fmt.Sprintf("Rolling %s: %s = **%d**", expression, result.String(), result.Int()))
}

func (u *BotUseCase) handleStatsCommand(ctx context.Context, event models.MessageEvent, rest string) error {
	statArg, kindArg := splitPipe(rest)
	if kindArg == "" {
		kindArg = "Final"
	}

	stats, err := statcalc.ParseStatString(statArg)
	if err != nil {
		return u.reply(event, fmt.Sprintf("%v. Give me a species name or six numbers.", err))
	}
	kind, err := statcalc.ParseKind(kindArg)
	if err != nil {
		kinds := statcalc.Kinds()
		names := make([]string, len(kinds))
		for i, k := range kinds {
			names[i] = k.String()
		}
		return u.reply(event, fmt.Sprintf("%v. Kinds: %s.", err, strings.Join(names, ", ")))
	}

	points := statcalc.DistributePoints(stats, kind)
	return u.reply(event, fmt.Sprintf("%s (%d points): %s",
		kind, kind.Points(), statcalc.FormatDistribution(points)))
}

func (u *BotUseCase) handleSizeCommand(ctx context.Context, event models.MessageEvent, rest string) error {
	heightArg, speciesArg := splitPipe(rest)

	meters, err := statcalc.ParseSize(heightArg)
	if err != nil {
		return u.reply(event, fmt.Sprintf("%v. Try `5'11\"`, `1.8m` or a species name.", err))
	}

	summary := fmt.Sprintf("%.2fm (%s)", meters, statcalc.FormatFeetInches(meters))
	if speciesArg == "" {
		return u.reply(event, summary)
	}

	mean, species, ok := statcalc.SpeciesHeight(speciesArg)
	if !ok {
		return u.reply(event, fmt.Sprintf("Unknown species %q.", speciesArg))
	}

	percentile := statcalc.HeightPercentile(mean, meters)
	chart, err := statcalc.RenderHeightCurve(mean, meters)
	if err != nil {
		return fmt.Errorf("failed to render height chart: %w", err)
	}

	content := fmt.Sprintf("%s is taller than %.0f%% of %s.", summary, percentile*100, species)
	_, err = u.discordClient.PostMessage(event.ChannelID, clients.DiscordMessageParams{
		Content: content,
		Files: []clients.DiscordFile{{
			Name:        "height.png",
			ContentType: "image/png",
			Reader:      bytes.NewReader(chart),
		}},
	})
	if err != nil {
		return fmt.Errorf("failed to post height chart: %w", err)
	}
	return nil
}

func splitCommand(s string) (string, string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ""
	}
	parts := strings.SplitN(s, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}

// splitFirstLine separates the first line from the remainder; used by
// commands that take a sheet body.
func splitFirstLine(s string) (string, string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ""
	}
	parts := strings.SplitN(s, "\n", 2)
	if len(parts) == 1 {
		return strings.TrimSpace(parts[0]), ""
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}

// parseChannelArg accepts a raw channel ID or a <#id> mention.
func parseChannelArg(arg string) string {
	arg = strings.TrimSpace(arg)
	if strings.HasPrefix(arg, "<#") && strings.HasSuffix(arg, ">") {
		return arg[2 : len(arg)-1]
	}
	return arg
}

func splitPipe(s string) (string, string) {
	parts := strings.SplitN(s, "|", 2)
	if len(parts) == 1 {
		return strings.TrimSpace(parts[0]), ""
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}
