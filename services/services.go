package services

import (
	"context"

	"github.com/samber/mo"

	"ocbot/models"
)

// CharactersService defines the interface for character storage and
// resolution operations
type CharactersService interface {
	CreateCharacter(
		ctx context.Context,
		userID, guildID, name, description, server string,
	) (*models.Character, error)
	GetCharacterByID(
		ctx context.Context,
		id string,
		scope models.CharacterScope,
	) (mo.Option[*models.Character], error)
	ListCharacters(ctx context.Context, scope models.CharacterScope) ([]*models.Character, error)
	// ResolveCharacter maps a free-form argument (character ID or fuzzy
	// name) to exactly one character in scope, or fails with
	// core.ErrNoCharacters / core.ErrCharacterNotFound.
	ResolveCharacter(ctx context.Context, scope models.CharacterScope, argument string) (*models.Character, error)
	// SearchCharacters returns fuzzy top matches followed by substring
	// matches on the display name, sorted by (user, name).
	SearchCharacters(ctx context.Context, scope models.CharacterScope, query string) ([]*models.Character, error)
	// AutocompleteCharacters returns at most 25 candidates sorted by name,
	// filtered by case-insensitive display-name containment when partial
	// is non-empty.
	AutocompleteCharacters(ctx context.Context, scope models.CharacterScope, partial string) ([]*models.Character, error)
	RenameCharacter(ctx context.Context, userID, id, name string) (*models.Character, error)
	UpdateCharacterDescription(ctx context.Context, userID, id, description string) (*models.Character, error)
	DeleteCharacter(ctx context.Context, userID, id string) (bool, error)
	DeleteAllCharacters(ctx context.Context, userID, guildID string) (int64, error)
}

// RemindersService owns the in-memory reminder registry and mirrors every
// mutation to persistent storage. The in-memory copy is authoritative; the
// persisted copy is eventually consistent.
type RemindersService interface {
	// LoadFromStore seeds the registry from storage. Called once at startup.
	LoadFromStore(ctx context.Context) error
	SetReminder(
		ctx context.Context,
		userID, channelID, guildID string,
		cooldownMinutes int,
	) (*models.ReminderInfo, error)
	ClearReminder(ctx context.Context, userID, channelID, guildID string) (bool, error)
	// RecordMessage notes a qualifying message from the user: the tracked
	// message moves forward and the notified flag resets. Returns false
	// when no reminder is registered for (user, channel).
	RecordMessage(ctx context.Context, userID, channelID, messageID string) (bool, error)
	MarkNotified(ctx context.Context, userID, channelID string) error
	// PurgeChannel drops every reminder for a channel from memory and
	// storage. Used when the channel is confirmed deleted.
	PurgeChannel(ctx context.Context, channelID string) error
	TrackedChannels() []string
	RemindersForChannel(channelID string) []*models.ReminderInfo
	ListForUser(userID string) []*models.ReminderInfo
	HasReminder(userID, channelID string) bool
}

// TransactionManager runs a function inside a context-carried database
// transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
