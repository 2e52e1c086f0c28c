package discord

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"ocbot/clients"
)

// DiscordClient implements the clients.DiscordClient interface on top of a
// live discordgo session.
type DiscordClient struct {
	session *discordgo.Session
}

// NewDiscordClient wraps an opened discordgo session
func NewDiscordClient(session *discordgo.Session) clients.DiscordClient {
	return &DiscordClient{session: session}
}

// GetBotUser returns the bot's own user from the session state
func (c *DiscordClient) GetBotUser() (*clients.DiscordBotUser, error) {
	if c.session.State != nil && c.session.State.User != nil {
		user := c.session.State.User
		return &clients.DiscordBotUser{ID: user.ID, Username: user.Username, Bot: user.Bot}, nil
	}

	user, err := c.session.User("@me")
	if err != nil {
		return nil, classify(fmt.Errorf("failed to fetch bot user: %w", err))
	}
	return &clients.DiscordBotUser{ID: user.ID, Username: user.Username, Bot: user.Bot}, nil
}

// GetChannel resolves a channel, preferring the session's state cache and
// falling back to a remote fetch. A clients.ErrNotFound result means the
// channel is confirmed gone.
func (c *DiscordClient) GetChannel(channelID string) (*clients.DiscordChannel, error) {
	if channel, err := c.session.State.Channel(channelID); err == nil {
		return &clients.DiscordChannel{ID: channel.ID, GuildID: channel.GuildID, Name: channel.Name}, nil
	}

	channel, err := c.session.Channel(channelID)
	if err != nil {
		return nil, classify(fmt.Errorf("failed to fetch channel %s: %w", channelID, err))
	}
	return &clients.DiscordChannel{ID: channel.ID, GuildID: channel.GuildID, Name: channel.Name}, nil
}

// GetMember resolves a guild member together with their cached presence.
// Members without a cached presence report DiscordStatusUnknown.
func (c *DiscordClient) GetMember(guildID, userID string) (*clients.DiscordMember, error) {
	member, err := c.session.State.Member(guildID, userID)
	if err != nil {
		member, err = c.session.GuildMember(guildID, userID)
		if err != nil {
			return nil, classify(fmt.Errorf("failed to fetch member %s in guild %s: %w", userID, guildID, err))
		}
	}

	status := clients.DiscordStatusUnknown
	if presence, err := c.session.State.Presence(guildID, userID); err == nil && presence != nil {
		status = clients.DiscordPresenceStatus(presence.Status)
	}

	username := ""
	if member.User != nil {
		username = member.User.Username
	}

	return &clients.DiscordMember{UserID: userID, Username: username, Status: status}, nil
}

func (c *DiscordClient) GetMessage(channelID, messageID string) (*clients.DiscordMessage, error) {
	message, err := c.session.ChannelMessage(channelID, messageID)
	if err != nil {
		return nil, classify(fmt.Errorf("failed to fetch message %s in channel %s: %w", messageID, channelID, err))
	}

	authorID := ""
	if message.Author != nil {
		authorID = message.Author.ID
	}

	return &clients.DiscordMessage{
		ID:        message.ID,
		ChannelID: message.ChannelID,
		UserID:    authorID,
		Content:   message.Content,
	}, nil
}

// CanSendMessages computes the user's effective permissions in the channel,
// preferring the state cache and falling back to a remote computation.
func (c *DiscordClient) CanSendMessages(channelID, userID string) (bool, error) {
	perms, err := c.session.State.UserChannelPermissions(userID, channelID)
	if err != nil {
		perms, err = c.session.UserChannelPermissions(userID, channelID)
		if err != nil {
			return false, classify(fmt.Errorf(
				"failed to compute permissions for user %s in channel %s: %w", userID, channelID, err))
		}
	}
	return perms&discordgo.PermissionSendMessages != 0, nil
}

func (c *DiscordClient) PostMessage(
	channelID string,
	params clients.DiscordMessageParams,
) (*clients.DiscordPostMessageResponse, error) {
	send := &discordgo.MessageSend{Content: params.Content}
	for _, f := range params.Files {
		send.Files = append(send.Files, &discordgo.File{
			Name:        f.Name,
			ContentType: f.ContentType,
			Reader:      f.Reader,
		})
	}

	message, err := c.session.ChannelMessageSendComplex(channelID, send)
	if err != nil {
		return nil, classify(fmt.Errorf("failed to send message to channel %s: %w", channelID, err))
	}

	return &clients.DiscordPostMessageResponse{ChannelID: message.ChannelID, MessageID: message.ID}, nil
}

func (c *DiscordClient) ReplyToMessage(
	channelID, messageID, content string,
) (*clients.DiscordPostMessageResponse, error) {
	reference := &discordgo.MessageReference{ChannelID: channelID, MessageID: messageID}
	message, err := c.session.ChannelMessageSendReply(channelID, content, reference)
	if err != nil {
		return nil, classify(fmt.Errorf("failed to reply to message %s in channel %s: %w", messageID, channelID, err))
	}

	return &clients.DiscordPostMessageResponse{ChannelID: message.ChannelID, MessageID: message.ID}, nil
}

func (c *DiscordClient) AddReaction(channelID, messageID, emoji string) error {
	if err := c.session.MessageReactionAdd(channelID, messageID, emoji); err != nil {
		return classify(fmt.Errorf("failed to add reaction to message %s: %w", messageID, err))
	}
	return nil
}

func (c *DiscordClient) DeleteMessage(channelID, messageID string) error {
	if err := c.session.ChannelMessageDelete(channelID, messageID); err != nil {
		return classify(fmt.Errorf("failed to delete message %s in channel %s: %w", messageID, channelID, err))
	}
	return nil
}

// MessageJumpURL builds the canonical jump link for a message
func (c *DiscordClient) MessageJumpURL(guildID, channelID, messageID string) string {
	return fmt.Sprintf("https://discord.com/channels/%s/%s/%s", guildID, channelID, messageID)
}

// classify tags transport errors with the sentinel the callers branch on.
// Anything that is neither a missing entity nor a permission failure stays a
// plain transport error.
func classify(err error) error {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return err
	}

	if restErr.Message != nil {
		switch restErr.Message.Code {
		case discordgo.ErrCodeUnknownChannel,
			discordgo.ErrCodeUnknownMessage,
			discordgo.ErrCodeUnknownMember,
			discordgo.ErrCodeUnknownUser:
			return fmt.Errorf("%w: %v", clients.ErrNotFound, err)
		case discordgo.ErrCodeMissingPermissions, discordgo.ErrCodeMissingAccess:
			return fmt.Errorf("%w: %v", clients.ErrForbidden, err)
		}
	}

	if restErr.Response != nil {
		switch restErr.Response.StatusCode {
		case 404:
			return fmt.Errorf("%w: %v", clients.ErrNotFound, err)
		case 403:
			return fmt.Errorf("%w: %v", clients.ErrForbidden, err)
		}
	}

	return err
}
