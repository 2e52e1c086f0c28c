package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"ocbot/models"
	"ocbot/utils"
)

// Discord caps autocomplete choice names at 100 characters.
const choiceNameLimit = 100

var charCommand = &discordgo.ApplicationCommand{
	Name:        "char",
	Description: "Look up a registered character",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "read",
			Description: "Show a character sheet",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         "character",
					Description:  "Character ID or name",
					Required:     true,
					Autocomplete: true,
				},
			},
		},
	},
}

// SyncCommands overwrites the bot's global slash commands. Call after the
// session is open so the application ID is known.
func (h *DiscordHandler) SyncCommands(session *discordgo.Session) error {
	if session.State == nil || session.State.User == nil {
		return fmt.Errorf("session has no authenticated user")
	}

	commands := []*discordgo.ApplicationCommand{charCommand}
	if _, err := session.ApplicationCommandBulkOverwrite(session.State.User.ID, "", commands); err != nil {
		return fmt.Errorf("failed to overwrite application commands: %w", err)
	}
	log.Printf("✅ Synced %d application commands", len(commands))
	return nil
}

func (h *DiscordHandler) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	// Guild-only surface; a DM interaction has no member or scope.
	if i.GuildID == "" || i.Member == nil || i.Member.User == nil {
		return
	}
	if i.Type != discordgo.InteractionApplicationCommand &&
		i.Type != discordgo.InteractionApplicationCommandAutocomplete {
		return
	}

	data := i.ApplicationCommandData()
	if data.Name != charCommand.Name || len(data.Options) == 0 {
		return
	}

	sub := data.Options[0]
	if sub.Name != "read" {
		return
	}

	scope := models.CharacterScope{UserID: i.Member.User.ID, GuildID: i.GuildID}
	argument := ""
	for _, option := range sub.Options {
		if option.Name == "character" {
			argument = option.StringValue()
		}
	}

	switch i.Type {
	case discordgo.InteractionApplicationCommandAutocomplete:
		h.alertMiddleware.WrapEventHandler("interaction_autocomplete", func() error {
			return h.respondAutocomplete(s, i, scope, argument)
		})
	case discordgo.InteractionApplicationCommand:
		h.alertMiddleware.WrapEventHandler("interaction_command", func() error {
			return h.respondCharRead(s, i, scope, argument)
		})
	}
}

func (h *DiscordHandler) respondAutocomplete(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	scope models.CharacterScope,
	partial string,
) error {
	candidates, err := h.usecase.AutocompleteCharacters(context.Background(), scope, partial)
	if err != nil {
		return fmt.Errorf("failed to autocomplete characters: %w", err)
	}

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(candidates))
	for _, candidate := range candidates {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  utils.TruncateRunes(candidate.DisplayName(), choiceNameLimit),
			Value: candidate.ID,
		})
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	})
}

func (h *DiscordHandler) respondCharRead(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	scope models.CharacterScope,
	argument string,
) error {
	content, err := h.usecase.CharacterSheet(context.Background(), scope, argument)
	if err != nil {
		content = "Something went wrong looking that character up."
		log.Printf("❌ Failed to build character sheet: %v", err)
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
}
