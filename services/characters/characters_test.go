package characters

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ocbot/core"
	"ocbot/db"
	"ocbot/models"
	"ocbot/testutils"
)

type charactersTestSetup struct {
	service *CharactersService
	repo    *db.PostgresCharactersRepository
	userID  string
	guildID string
}

// setupCharactersTest wires the service against a live database. Tests are
// skipped when no test database is configured.
func setupCharactersTest(t *testing.T) *charactersTestSetup {
	cfg, err := testutils.LoadTestConfig()
	if err != nil {
		t.Skipf("no test database configured: %v", err)
	}

	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	require.NoError(t, err)
	t.Cleanup(func() { dbConn.Close() })

	repo := db.NewPostgresCharactersRepository(dbConn, cfg.DatabaseSchema)
	return &charactersTestSetup{
		service: NewCharactersService(repo),
		repo:    repo,
		userID:  "test-user-" + uuid.New().String(),
		guildID: "test-guild-" + uuid.New().String(),
	}
}

func (s *charactersTestSetup) scope() models.CharacterScope {
	return models.CharacterScope{UserID: s.userID, GuildID: s.guildID}
}

func TestCharactersServiceLifecycle(t *testing.T) {
	setup := setupCharactersTest(t)
	ctx := context.Background()
	sheet := "Name: Spark\nSpecies: Jolteon\nLevel: 5"

	created, err := setup.service.CreateCharacter(ctx, setup.userID, setup.guildID, "Spark", sheet, "")
	require.NoError(t, err)
	assert.True(t, core.IsCharacterID(created.ID))
	assert.Equal(t, "Spark", created.Name)

	t.Run("duplicate name rejected", func(t *testing.T) {
		_, err := setup.service.CreateCharacter(ctx, setup.userID, setup.guildID, "Spark", sheet, "")
		assert.Error(t, err)
	})

	t.Run("resolve by ID, exact name and misspelling agree", func(t *testing.T) {
		byID, err := setup.service.ResolveCharacter(ctx, setup.scope(), created.ID)
		require.NoError(t, err)
		byName, err := setup.service.ResolveCharacter(ctx, setup.scope(), "Spark")
		require.NoError(t, err)
		byFuzzy, err := setup.service.ResolveCharacter(ctx, setup.scope(), "Sprak")
		require.NoError(t, err)

		assert.True(t, byID.Equal(byName))
		assert.True(t, byID.Equal(byFuzzy))
	})

	t.Run("resolution is idempotent", func(t *testing.T) {
		first, err := setup.service.ResolveCharacter(ctx, setup.scope(), "Sprak")
		require.NoError(t, err)
		second, err := setup.service.ResolveCharacter(ctx, setup.scope(), "Sprak")
		require.NoError(t, err)
		assert.True(t, first.Equal(second))
	})

	t.Run("unmatched name fails with not-found", func(t *testing.T) {
		_, err := setup.service.ResolveCharacter(ctx, setup.scope(), "Zzyzx")
		assert.ErrorIs(t, err, core.ErrCharacterNotFound)
	})

	t.Run("empty scope fails with no-characters", func(t *testing.T) {
		empty := models.CharacterScope{
			UserID:  "test-user-" + uuid.New().String(),
			GuildID: "test-guild-" + uuid.New().String(),
		}
		_, err := setup.service.ResolveCharacter(ctx, empty, "Spark")
		assert.ErrorIs(t, err, core.ErrNoCharacters)
	})

	t.Run("rename and edit keep identity", func(t *testing.T) {
		renamed, err := setup.service.RenameCharacter(ctx, setup.userID, created.ID, "Sparky")
		require.NoError(t, err)
		assert.Equal(t, created.ID, renamed.ID)
		assert.True(t, created.Equal(renamed))

		updated, err := setup.service.UpdateCharacterDescription(ctx, setup.userID, created.ID,
			"Name: Sparky\nSpecies: Jolteon\nLevel: 6")
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
	})

	t.Run("other users cannot mutate", func(t *testing.T) {
		strangerID := "test-user-" + uuid.New().String()
		_, err := setup.service.RenameCharacter(ctx, strangerID, created.ID, "Stolen")
		assert.ErrorIs(t, err, core.ErrCharacterNotFound)

		deleted, err := setup.service.DeleteCharacter(ctx, strangerID, created.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("delete removes the character", func(t *testing.T) {
		deleted, err := setup.service.DeleteCharacter(ctx, setup.userID, created.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		maybeCharacter, err := setup.service.GetCharacterByID(ctx, created.ID, setup.scope())
		require.NoError(t, err)
		assert.False(t, maybeCharacter.IsPresent())
	})
}

func TestCharactersServiceSearchAndAutocomplete(t *testing.T) {
	setup := setupCharactersTest(t)
	ctx := context.Background()

	for _, seed := range []struct{ name, species string }{
		{"Spark", "Jolteon"},
		{"Sparkle", "Espeon"},
		{"Ember", "Flareon"},
	} {
		_, err := setup.service.CreateCharacter(ctx, setup.userID, setup.guildID, seed.name,
			"Name: "+seed.name+"\nSpecies: "+seed.species+"\nLevel: 3", "")
		require.NoError(t, err)
	}

	t.Run("search finds fuzzy and substring hits", func(t *testing.T) {
		results, err := setup.service.SearchCharacters(ctx, setup.scope(), "Spark")
		require.NoError(t, err)
		require.Len(t, results, 2)

		results, err = setup.service.SearchCharacters(ctx, setup.scope(), "flareon")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Ember", results[0].Name)
	})

	t.Run("autocomplete filters by containment", func(t *testing.T) {
		results, err := setup.service.AutocompleteCharacters(ctx, setup.scope(), "spark")
		require.NoError(t, err)
		assert.Len(t, results, 2)

		all, err := setup.service.AutocompleteCharacters(ctx, setup.scope(), "")
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})
}
