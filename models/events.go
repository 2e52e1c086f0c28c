package models

// MessageAttachment identifies a file attached to a message. Filenames are
// used to correlate webhook echoes with their original post.
type MessageAttachment struct {
	ID       string
	Filename string
}

// MessageEvent is an inbound chat message, already detached from the
// platform SDK's session types.
type MessageEvent struct {
	GuildID   string
	ChannelID string
	MessageID string
	UserID    string
	Content   string
	// WebhookID is set when the message was relayed by a webhook (a "proxy"
	// message sent on behalf of a user).
	WebhookID   string
	Bot         bool
	Attachments []MessageAttachment
}

// IsProxy reports whether the message came through a webhook relay rather
// than directly from its author.
func (e MessageEvent) IsProxy() bool {
	return e.WebhookID != ""
}

// ReactionEvent is an inbound reaction add.
type ReactionEvent struct {
	GuildID         string
	ChannelID       string
	MessageID       string
	UserID          string
	EmojiName       string
	MessageAuthorID string
}

// ChannelDeleteEvent signals that a channel disappeared; all reminder state
// for it must be purged.
type ChannelDeleteEvent struct {
	GuildID   string
	ChannelID string
}
