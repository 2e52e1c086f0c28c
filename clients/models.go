package clients

import "io"

// DiscordBotUser represents the bot's own user information
type DiscordBotUser struct {
	ID       string
	Username string
	Bot      bool
}

// DiscordChannel represents Discord channel information
type DiscordChannel struct {
	ID      string
	GuildID string
	Name    string
}

// DiscordPresenceStatus is a member's observed presence
type DiscordPresenceStatus string

const (
	DiscordStatusOnline  DiscordPresenceStatus = "online"
	DiscordStatusIdle    DiscordPresenceStatus = "idle"
	DiscordStatusDND     DiscordPresenceStatus = "dnd"
	DiscordStatusOffline DiscordPresenceStatus = "offline"
	// DiscordStatusUnknown means no presence was observed for the member.
	// The sweep treats unknown as deliverable - only a confirmed "offline"
	// suppresses a notification.
	DiscordStatusUnknown DiscordPresenceStatus = "unknown"
)

// DiscordMember represents a guild member with their observed presence
type DiscordMember struct {
	UserID   string
	Username string
	Status   DiscordPresenceStatus
}

// DiscordMessage represents a fetched Discord message
type DiscordMessage struct {
	ID        string
	ChannelID string
	UserID    string
	Content   string
}

// DiscordFile is an attachment to send along with a message
type DiscordFile struct {
	Name        string
	ContentType string
	Reader      io.Reader
}

// DiscordMessageParams holds parameters for sending Discord messages
type DiscordMessageParams struct {
	Content string
	Files   []DiscordFile
}

// DiscordPostMessageResponse represents the response from posting a message
type DiscordPostMessageResponse struct {
	ChannelID string
	MessageID string
}
