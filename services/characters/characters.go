package characters

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/samber/mo"

	"ocbot/core"
	"ocbot/db"
	"ocbot/models"
	"ocbot/utils"
)

type CharactersService struct {
	charactersRepo *db.PostgresCharactersRepository
}

func NewCharactersService(repo *db.PostgresCharactersRepository) *CharactersService {
	return &CharactersService{charactersRepo: repo}
}

func (s *CharactersService) CreateCharacter(
	ctx context.Context,
	userID, guildID, name, description, server string,
) (*models.Character, error) {
	log.Printf("📋 Starting to create character %q for user: %s in guild: %s", name, userID, guildID)

	if userID == "" {
		return nil, fmt.Errorf("user_id cannot be empty")
	}
	if guildID == "" {
		return nil, fmt.Errorf("guild_id cannot be empty")
	}
	if err := validateCharacterName(name); err != nil {
		return nil, err
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("description cannot be empty")
	}

	// Reject duplicates within the user's own roster; resolution would
	// otherwise become ambiguous.
	existing, err := s.charactersRepo.GetCharacterByName(
		ctx,
		utils.RemoveMarkdown(name),
		models.CharacterScope{UserID: userID, GuildID: guildID},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing character: %w", err)
	}
	if existing.IsPresent() {
		return nil, fmt.Errorf("character %q already exists", existing.MustGet().Name)
	}

	character := &models.Character{
		ID:          core.NewID(core.CharacterIDPrefix),
		UserID:      userID,
		GuildID:     guildID,
		Name:        utils.RemoveMarkdown(name),
		Description: description,
		Server:      server,
	}

	if err := s.charactersRepo.CreateCharacter(ctx, character); err != nil {
		return nil, fmt.Errorf("failed to create character: %w", err)
	}

	log.Printf("📋 Completed successfully - created character with ID: %s", character.ID)
	return character, nil
}

func (s *CharactersService) GetCharacterByID(
	ctx context.Context,
	id string,
	scope models.CharacterScope,
) (mo.Option[*models.Character], error) {
	if !core.IsCharacterID(id) {
		return mo.None[*models.Character](), fmt.Errorf("character ID must be a valid prefixed ULID")
	}

	maybeCharacter, err := s.charactersRepo.GetCharacterByID(ctx, id, scope)
	if err != nil {
		return mo.None[*models.Character](), fmt.Errorf("failed to get character: %w", err)
	}
	return maybeCharacter, nil
}

func (s *CharactersService) ListCharacters(
	ctx context.Context,
	scope models.CharacterScope,
) ([]*models.Character, error) {
	if scope.IsZero() {
		return nil, fmt.Errorf("scope must name a user or a guild")
	}

	characters, err := s.charactersRepo.ListCharacters(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	return characters, nil
}

func (s *CharactersService) RenameCharacter(
	ctx context.Context,
	userID, id, name string,
) (*models.Character, error) {
	log.Printf("📋 Starting to rename character %s for user: %s", id, userID)

	if !core.IsCharacterID(id) {
		return nil, fmt.Errorf("character ID must be a valid prefixed ULID")
	}
	if err := validateCharacterName(name); err != nil {
		return nil, err
	}

	maybeCharacter, err := s.charactersRepo.UpdateCharacterName(ctx, id, userID, utils.RemoveMarkdown(name))
	if err != nil {
		return nil, fmt.Errorf("failed to rename character: %w", err)
	}
	if !maybeCharacter.IsPresent() {
		return nil, core.ErrCharacterNotFound
	}

	character := maybeCharacter.MustGet()
	log.Printf("📋 Completed successfully - renamed character %s to %q", character.ID, character.Name)
	return character, nil
}

func (s *CharactersService) UpdateCharacterDescription(
	ctx context.Context,
	userID, id, description string,
) (*models.Character, error) {
	log.Printf("📋 Starting to update description of character %s for user: %s", id, userID)

	if !core.IsCharacterID(id) {
		return nil, fmt.Errorf("character ID must be a valid prefixed ULID")
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("description cannot be empty")
	}

	maybeCharacter, err := s.charactersRepo.UpdateCharacterDescription(ctx, id, userID, description)
	if err != nil {
		return nil, fmt.Errorf("failed to update character description: %w", err)
	}
	if !maybeCharacter.IsPresent() {
		return nil, core.ErrCharacterNotFound
	}

	character := maybeCharacter.MustGet()
	log.Printf("📋 Completed successfully - updated description of character %s", character.ID)
	return character, nil
}

func (s *CharactersService) DeleteCharacter(ctx context.Context, userID, id string) (bool, error) {
	log.Printf("📋 Starting to delete character %s for user: %s", id, userID)

	if !core.IsCharacterID(id) {
		return false, fmt.Errorf("character ID must be a valid prefixed ULID")
	}

	deleted, err := s.charactersRepo.DeleteCharacter(ctx, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete character: %w", err)
	}

	log.Printf("📋 Completed successfully - deleted character %s: %t", id, deleted)
	return deleted, nil
}

func (s *CharactersService) DeleteAllCharacters(ctx context.Context, userID, guildID string) (int64, error) {
	log.Printf("📋 Starting to delete all characters for user: %s in guild: %s", userID, guildID)

	if userID == "" {
		return 0, fmt.Errorf("user_id cannot be empty")
	}
	if guildID == "" {
		return 0, fmt.Errorf("guild_id cannot be empty")
	}

	count, err := s.charactersRepo.DeleteCharactersByUser(ctx, userID, guildID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete characters: %w", err)
	}

	log.Printf("📋 Completed successfully - deleted %d characters for user %s", count, userID)
	return count, nil
}

func validateCharacterName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if len([]rune(trimmed)) > models.MaxCharacterNameLength {
		return fmt.Errorf("name must be at most %d characters", models.MaxCharacterNameLength)
	}
	return nil
}
