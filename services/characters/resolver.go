package characters

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"ocbot/core"
	"ocbot/models"
	"ocbot/utils"
)

const (
	// resolveCutoff is the minimum fuzzy score for a single-winner lookup.
	// "Sprak" against "Spark" scores exactly 80, which should resolve.
	resolveCutoff = 80
	// searchCutoff is looser: search returns a ranked list, so weaker
	// matches are acceptable.
	searchCutoff = 60
	// autocompleteLimit matches the Discord cap on autocomplete choices.
	autocompleteLimit = 25
)

// ResolveCharacter maps a free-form argument to exactly one character.
// IDs resolve directly; anything else goes through exact-name and then
// fuzzy matching over the roster in scope.
func (s *CharactersService) ResolveCharacter(
	ctx context.Context,
	scope models.CharacterScope,
	argument string,
) (*models.Character, error) {
	log.Printf("🔍 Resolving character %q in scope %s", argument, scope)

	if strings.TrimSpace(argument) == "" {
		return nil, fmt.Errorf("argument cannot be empty")
	}
	if scope.IsZero() {
		return nil, fmt.Errorf("scope must name a user or a guild")
	}

	// An ID that doesn't exist falls through to name matching: users
	// occasionally name characters things that look like identifiers.
	if core.IsCharacterID(argument) {
		maybeCharacter, err := s.charactersRepo.GetCharacterByID(ctx, argument, scope)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve character by ID: %w", err)
		}
		if maybeCharacter.IsPresent() {
			return maybeCharacter.MustGet(), nil
		}
	}

	name := utils.RemoveMarkdown(argument)
	maybeCharacter, err := s.charactersRepo.GetCharacterByName(ctx, name, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve character by name: %w", err)
	}
	if maybeCharacter.IsPresent() {
		return maybeCharacter.MustGet(), nil
	}

	roster, err := s.charactersRepo.ListCharacters(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list characters for resolution: %w", err)
	}
	if len(roster) == 0 {
		return nil, core.ErrNoCharacters
	}

	character, ok := bestCharacterMatch(name, roster, resolveCutoff)
	if !ok {
		return nil, core.ErrCharacterNotFound
	}

	log.Printf("🔍 Resolved %q to character %s (%s)", argument, character.ID, character.Name)
	return character, nil
}

// SearchCharacters returns fuzzy matches above the search cutoff followed
// by display-name substring matches, sorted by (user, name).
func (s *CharactersService) SearchCharacters(
	ctx context.Context,
	scope models.CharacterScope,
	query string,
) ([]*models.Character, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query cannot be empty")
	}
	if scope.IsZero() {
		return nil, fmt.Errorf("scope must name a user or a guild")
	}

	roster, err := s.charactersRepo.ListCharacters(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list characters for search: %w", err)
	}

	return searchRoster(utils.RemoveMarkdown(query), roster), nil
}

// AutocompleteCharacters returns up to 25 candidates sorted by name,
// filtered by case-insensitive display-name containment when partial is
// non-empty.
func (s *CharactersService) AutocompleteCharacters(
	ctx context.Context,
	scope models.CharacterScope,
	partial string,
) ([]*models.Character, error) {
	if scope.IsZero() {
		return nil, fmt.Errorf("scope must name a user or a guild")
	}

	roster, err := s.charactersRepo.ListCharacters(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list characters for autocomplete: %w", err)
	}

	return filterAutocomplete(partial, roster), nil
}

// bestCharacterMatch scores the query against each roster entry's parsed
// name and returns the winner at or above cutoff. Ties keep the earliest
// roster entry.
func bestCharacterMatch(query string, roster []*models.Character, cutoff int) (*models.Character, bool) {
	names := make([]string, len(roster))
	for i, character := range roster {
		names[i] = character.OCName()
	}

	match, ok := utils.BestFuzzyMatch(query, names, cutoff)
	if !ok {
		return nil, false
	}
	return roster[match.Index], true
}

func searchRoster(query string, roster []*models.Character) []*models.Character {
	names := make([]string, len(roster))
	for i, character := range roster {
		names[i] = character.OCName()
	}

	seen := make(map[string]bool)
	var results []*models.Character

	for _, match := range utils.TopFuzzyMatches(query, names, searchCutoff, len(roster)) {
		character := roster[match.Index]
		if !seen[character.ID] {
			seen[character.ID] = true
			results = append(results, character)
		}
	}

	// Substring hits on the sheet or the rendered display name catch
	// species, level and description fragments the fuzzy pass misses.
	lowered := strings.ToLower(query)
	for _, character := range roster {
		if seen[character.ID] {
			continue
		}
		if character.Matches(query) ||
			strings.Contains(strings.ToLower(character.DisplayName()), lowered) {
			seen[character.ID] = true
			results = append(results, character)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].UserID != results[j].UserID {
			return results[i].UserID < results[j].UserID
		}
		return results[i].Name < results[j].Name
	})

	return results
}

func filterAutocomplete(partial string, roster []*models.Character) []*models.Character {
	lowered := strings.ToLower(strings.TrimSpace(partial))

	var results []*models.Character
	for _, character := range roster {
		if lowered != "" && !strings.Contains(strings.ToLower(character.DisplayName()), lowered) {
			continue
		}
		results = append(results, character)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Name < results[j].Name
	})

	if len(results) > autocompleteLimit {
		results = results[:autocompleteLimit]
	}
	return results
}
