package handlers

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"

	"ocbot/clients"
	"ocbot/middleware"
	"ocbot/models"
	"ocbot/usecases/bot"
)

// DiscordHandler translates discordgo gateway events into platform-neutral
// event models and forwards them to the bot usecase.
type DiscordHandler struct {
	usecase         *bot.BotUseCase
	discordClient   clients.DiscordClient
	alertMiddleware *middleware.ErrorAlertMiddleware
}

func NewDiscordHandler(
	usecase *bot.BotUseCase,
	discordClient clients.DiscordClient,
	alertMiddleware *middleware.ErrorAlertMiddleware,
) *DiscordHandler {
	return &DiscordHandler{
		usecase:         usecase,
		discordClient:   discordClient,
		alertMiddleware: alertMiddleware,
	}
}

// Register attaches the gateway handlers to the session.
func (h *DiscordHandler) Register(session *discordgo.Session) {
	session.AddHandler(h.onMessageCreate)
	session.AddHandler(h.onReactionAdd)
	session.AddHandler(h.onChannelDelete)
	session.AddHandler(h.onInteractionCreate)
	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("✅ Discord gateway ready as %s", r.User.Username)
	})
}

func (h *DiscordHandler) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil {
		return
	}
	// The bot's own messages never qualify for tracking or commands.
	if s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	event := models.MessageEvent{
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		MessageID: m.ID,
		UserID:    m.Author.ID,
		Content:   m.Content,
		WebhookID: m.WebhookID,
		Bot:       m.Author.Bot,
	}
	for _, attachment := range m.Attachments {
		event.Attachments = append(event.Attachments, models.MessageAttachment{
			ID:       attachment.ID,
			Filename: attachment.Filename,
		})
	}

	h.alertMiddleware.WrapEventHandler("message_create", func() error {
		return h.usecase.ProcessMessageEvent(context.Background(), event)
	})
}

func (h *DiscordHandler) onReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if r.Emoji.Name != "❌" {
		return
	}

	// The gateway payload doesn't carry the message author; fetch it so the
	// usecase can verify the reaction targets one of the bot's messages.
	message, err := h.discordClient.GetMessage(r.ChannelID, r.MessageID)
	if err != nil {
		if !clients.IsNotFound(err) {
			log.Printf("⚠️ Failed to fetch reacted message %s: %v", r.MessageID, err)
		}
		return
	}

	event := models.ReactionEvent{
		GuildID:         r.GuildID,
		ChannelID:       r.ChannelID,
		MessageID:       r.MessageID,
		UserID:          r.UserID,
		EmojiName:       r.Emoji.Name,
		MessageAuthorID: message.UserID,
	}

	h.alertMiddleware.WrapEventHandler("message_reaction_add", func() error {
		return h.usecase.ProcessReactionEvent(context.Background(), event)
	})
}

func (h *DiscordHandler) onChannelDelete(s *discordgo.Session, c *discordgo.ChannelDelete) {
	event := models.ChannelDeleteEvent{
		GuildID:   c.GuildID,
		ChannelID: c.ID,
	}

	h.alertMiddleware.WrapEventHandler("channel_delete", func() error {
		return h.usecase.ProcessChannelDelete(context.Background(), event)
	})
}
