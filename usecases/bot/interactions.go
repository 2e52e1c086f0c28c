package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ocbot/core"
	"ocbot/models"
)

// CharacterSheet resolves a slash-command argument and renders the full
// sheet. Lookup misses come back as user-facing text, not errors.
func (u *BotUseCase) CharacterSheet(
	ctx context.Context,
	scope models.CharacterScope,
	argument string,
) (string, error) {
	argument = strings.TrimSpace(argument)
	if argument == "" {
		return "Which character? Give me an ID or a name.", nil
	}

	character, err := u.charactersService.ResolveCharacter(ctx, scope, argument)
	switch {
	case err == nil:
		return formatCharacterSheet(character), nil
	case errors.Is(err, core.ErrNoCharacters):
		return "You have no characters registered.", nil
	case core.IsNotFoundError(err):
		return fmt.Sprintf("No character matched %q.", argument), nil
	default:
		return "", fmt.Errorf("failed to resolve character: %w", err)
	}
}

// AutocompleteCharacters backs the slash-command option suggestions.
func (u *BotUseCase) AutocompleteCharacters(
	ctx context.Context,
	scope models.CharacterScope,
	partial string,
) ([]*models.Character, error) {
	return u.charactersService.AutocompleteCharacters(ctx, scope, partial)
}
