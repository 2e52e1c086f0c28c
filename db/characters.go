package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/samber/mo"

	dbtx "ocbot/db/tx"
	"ocbot/models"
)

type PostgresCharactersRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for characters table
var charactersColumns = []string{
	"id",
	"user_id",
	"guild_id",
	"name",
	"description",
	"server",
	"created_at",
	"updated_at",
}

func NewPostgresCharactersRepository(db *sqlx.DB, schema string) *PostgresCharactersRepository {
	return &PostgresCharactersRepository{db: db, schema: schema}
}

func (r *PostgresCharactersRepository) CreateCharacter(ctx context.Context, character *models.Character) error {
	db := dbtx.GetTransactional(ctx, r.db)
	query := fmt.Sprintf(`
		INSERT INTO %s.characters (id, user_id, guild_id, name, description, server, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())`,
		r.schema)

	_, err := db.ExecContext(
		ctx,
		query,
		character.ID,
		character.UserID,
		character.GuildID,
		character.Name,
		character.Description,
		character.Server,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique violation
				return fmt.Errorf("character already exists")
			}
		}
		return fmt.Errorf("failed to create character: %w", err)
	}

	return nil
}

// scopeConditions appends WHERE fragments restricting a query to the given
// scope. Argument numbering continues from the supplied offset.
func scopeConditions(scope models.CharacterScope, conditions []string, args []any) ([]string, []any) {
	if scope.UserID != "" {
		args = append(args, scope.UserID)
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if scope.GuildID != "" {
		args = append(args, scope.GuildID)
		conditions = append(conditions, fmt.Sprintf("guild_id = $%d", len(args)))
	}
	return conditions, args
}

func (r *PostgresCharactersRepository) GetCharacterByID(
	ctx context.Context,
	id string,
	scope models.CharacterScope,
) (mo.Option[*models.Character], error) {
	db := dbtx.GetTransactional(ctx, r.db)

	args := []any{id}
	conditions := []string{"id = $1"}
	conditions, args = scopeConditions(scope, conditions, args)

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.characters
		WHERE %s`,
		strings.Join(charactersColumns, ", "), r.schema, strings.Join(conditions, " AND "))

	var character models.Character
	err := db.GetContext(ctx, &character, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return mo.None[*models.Character](), nil
		}
		return mo.None[*models.Character](), fmt.Errorf("failed to get character by ID: %w", err)
	}

	return mo.Some(&character), nil
}

func (r *PostgresCharactersRepository) GetCharacterByName(
	ctx context.Context,
	name string,
	scope models.CharacterScope,
) (mo.Option[*models.Character], error) {
	db := dbtx.GetTransactional(ctx, r.db)

	args := []any{name}
	conditions := []string{"name = $1"}
	conditions, args = scopeConditions(scope, conditions, args)

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.characters
		WHERE %s
		ORDER BY created_at ASC
		LIMIT 1`,
		strings.Join(charactersColumns, ", "), r.schema, strings.Join(conditions, " AND "))

	var character models.Character
	err := db.GetContext(ctx, &character, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return mo.None[*models.Character](), nil
		}
		return mo.None[*models.Character](), fmt.Errorf("failed to get character by name: %w", err)
	}

	return mo.Some(&character), nil
}

func (r *PostgresCharactersRepository) ListCharacters(
	ctx context.Context,
	scope models.CharacterScope,
) ([]*models.Character, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	var args []any
	conditions := []string{"TRUE"}
	conditions, args = scopeConditions(scope, conditions, args)

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.characters
		WHERE %s
		ORDER BY name ASC, created_at ASC`,
		strings.Join(charactersColumns, ", "), r.schema, strings.Join(conditions, " AND "))

	var characters []models.Character
	err := db.SelectContext(ctx, &characters, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}

	result := make([]*models.Character, len(characters))
	for i := range characters {
		result[i] = &characters[i]
	}

	return result, nil
}

func (r *PostgresCharactersRepository) UpdateCharacterName(
	ctx context.Context,
	id, userID, name string,
) (mo.Option[*models.Character], error) {
	db := dbtx.GetTransactional(ctx, r.db)
	query := fmt.Sprintf(`
		UPDATE %s.characters
		SET name = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
		RETURNING %s`,
		r.schema, strings.Join(charactersColumns, ", "))

	var character models.Character
	err := db.GetContext(ctx, &character, query, name, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return mo.None[*models.Character](), nil
		}
		return mo.None[*models.Character](), fmt.Errorf("failed to update character name: %w", err)
	}

	return mo.Some(&character), nil
}

func (r *PostgresCharactersRepository) UpdateCharacterDescription(
	ctx context.Context,
	id, userID, description string,
) (mo.Option[*models.Character], error) {
	db := dbtx.GetTransactional(ctx, r.db)
	query := fmt.Sprintf(`
		UPDATE %s.characters
		SET description = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
		RETURNING %s`,
		r.schema, strings.Join(charactersColumns, ", "))

	var character models.Character
	err := db.GetContext(ctx, &character, query, description, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return mo.None[*models.Character](), nil
		}
		return mo.None[*models.Character](), fmt.Errorf("failed to update character description: %w", err)
	}

	return mo.Some(&character), nil
}

func (r *PostgresCharactersRepository) DeleteCharacter(ctx context.Context, id, userID string) (bool, error) {
	db := dbtx.GetTransactional(ctx, r.db)
	query := fmt.Sprintf(`
		DELETE FROM %s.characters
		WHERE id = $1 AND user_id = $2`,
		r.schema)

	result, err := db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete character: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *PostgresCharactersRepository) DeleteCharactersByUser(
	ctx context.Context,
	userID, guildID string,
) (int64, error) {
	db := dbtx.GetTransactional(ctx, r.db)
	query := fmt.Sprintf(`
		DELETE FROM %s.characters
		WHERE user_id = $1 AND guild_id = $2`,
		r.schema)

	result, err := db.ExecContext(ctx, query, userID, guildID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete characters for user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}
