package clients

// DiscordClient defines the outbound Discord operations the bot performs.
// Implementations classify platform failures with ErrNotFound / ErrForbidden
// so callers can tell a vanished channel from a permission problem.
type DiscordClient interface {
	GetBotUser() (*DiscordBotUser, error)
	// GetChannel consults the session cache first and falls back to a
	// remote fetch.
	GetChannel(channelID string) (*DiscordChannel, error)
	GetMember(guildID, userID string) (*DiscordMember, error)
	GetMessage(channelID, messageID string) (*DiscordMessage, error)
	// CanSendMessages reports whether the user holds send rights in the
	// channel. Checked before any mutation that targets the channel.
	CanSendMessages(channelID, userID string) (bool, error)
	PostMessage(channelID string, params DiscordMessageParams) (*DiscordPostMessageResponse, error)
	// ReplyToMessage posts a message referencing an existing one.
	ReplyToMessage(channelID, messageID, content string) (*DiscordPostMessageResponse, error)
	AddReaction(channelID, messageID, emoji string) error
	DeleteMessage(channelID, messageID string) error
	MessageJumpURL(guildID, channelID, messageID string) string
}
