package characters

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"ocbot/models"
)

type MockCharactersService struct {
	mock.Mock
}

func (m *MockCharactersService) CreateCharacter(
	ctx context.Context,
	userID, guildID, name, description, server string,
) (*models.Character, error) {
	args := m.Called(ctx, userID, guildID, name, description, server)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Character), args.Error(1)
}

func (m *MockCharactersService) GetCharacterByID(
	ctx context.Context,
	id string,
	scope models.CharacterScope,
) (mo.Option[*models.Character], error) {
	args := m.Called(ctx, id, scope)
	return args.Get(0).(mo.Option[*models.Character]), args.Error(1)
}

func (m *MockCharactersService) ListCharacters(
	ctx context.Context,
	scope models.CharacterScope,
) ([]*models.Character, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Character), args.Error(1)
}

func (m *MockCharactersService) ResolveCharacter(
	ctx context.Context,
	scope models.CharacterScope,
	argument string,
) (*models.Character, error) {
	args := m.Called(ctx, scope, argument)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Character), args.Error(1)
}

func (m *MockCharactersService) SearchCharacters(
	ctx context.Context,
	scope models.CharacterScope,
	query string,
) ([]*models.Character, error) {
	args := m.Called(ctx, scope, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Character), args.Error(1)
}

func (m *MockCharactersService) AutocompleteCharacters(
	ctx context.Context,
	scope models.CharacterScope,
	partial string,
) ([]*models.Character, error) {
	args := m.Called(ctx, scope, partial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Character), args.Error(1)
}

func (m *MockCharactersService) RenameCharacter(
	ctx context.Context,
	userID, id, name string,
) (*models.Character, error) {
	args := m.Called(ctx, userID, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Character), args.Error(1)
}

func (m *MockCharactersService) UpdateCharacterDescription(
	ctx context.Context,
	userID, id, description string,
) (*models.Character, error) {
	args := m.Called(ctx, userID, id, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Character), args.Error(1)
}

func (m *MockCharactersService) DeleteCharacter(ctx context.Context, userID, id string) (bool, error) {
	args := m.Called(ctx, userID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCharactersService) DeleteAllCharacters(ctx context.Context, userID, guildID string) (int64, error) {
	args := m.Called(ctx, userID, guildID)
	return args.Get(0).(int64), args.Error(1)
}
