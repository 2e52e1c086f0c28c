package discord

import (
	"github.com/stretchr/testify/mock"

	"ocbot/clients"
)

// MockDiscordClient implements the clients.DiscordClient interface for testing
type MockDiscordClient struct {
	mock.Mock
}

func (m *MockDiscordClient) GetBotUser() (*clients.DiscordBotUser, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordBotUser), args.Error(1)
}

func (m *MockDiscordClient) GetChannel(channelID string) (*clients.DiscordChannel, error) {
	args := m.Called(channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordChannel), args.Error(1)
}

func (m *MockDiscordClient) GetMember(guildID, userID string) (*clients.DiscordMember, error) {
	args := m.Called(guildID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordMember), args.Error(1)
}

func (m *MockDiscordClient) GetMessage(channelID, messageID string) (*clients.DiscordMessage, error) {
	args := m.Called(channelID, messageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordMessage), args.Error(1)
}

func (m *MockDiscordClient) CanSendMessages(channelID, userID string) (bool, error) {
	args := m.Called(channelID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockDiscordClient) PostMessage(
	channelID string,
	params clients.DiscordMessageParams,
) (*clients.DiscordPostMessageResponse, error) {
	args := m.Called(channelID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordPostMessageResponse), args.Error(1)
}

func (m *MockDiscordClient) ReplyToMessage(
	channelID, messageID, content string,
) (*clients.DiscordPostMessageResponse, error) {
	args := m.Called(channelID, messageID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordPostMessageResponse), args.Error(1)
}

func (m *MockDiscordClient) AddReaction(channelID, messageID, emoji string) error {
	args := m.Called(channelID, messageID, emoji)
	return args.Error(0)
}

func (m *MockDiscordClient) DeleteMessage(channelID, messageID string) error {
	args := m.Called(channelID, messageID)
	return args.Error(0)
}

func (m *MockDiscordClient) MessageJumpURL(guildID, channelID, messageID string) string {
	args := m.Called(guildID, channelID, messageID)
	return args.String(0)
}
