package reminders

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ocbot/models"
)

type MockRemindersService struct {
	mock.Mock
}

func (m *MockRemindersService) LoadFromStore(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRemindersService) SetReminder(
	ctx context.Context,
	userID, channelID, guildID string,
	cooldownMinutes int,
) (*models.ReminderInfo, error) {
	args := m.Called(ctx, userID, channelID, guildID, cooldownMinutes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReminderInfo), args.Error(1)
}

func (m *MockRemindersService) ClearReminder(ctx context.Context, userID, channelID, guildID string) (bool, error) {
	args := m.Called(ctx, userID, channelID, guildID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRemindersService) RecordMessage(ctx context.Context, userID, channelID, messageID string) (bool, error) {
	args := m.Called(ctx, userID, channelID, messageID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRemindersService) MarkNotified(ctx context.Context, userID, channelID string) error {
	args := m.Called(ctx, userID, channelID)
	return args.Error(0)
}

func (m *MockRemindersService) PurgeChannel(ctx context.Context, channelID string) error {
	args := m.Called(ctx, channelID)
	return args.Error(0)
}

func (m *MockRemindersService) TrackedChannels() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockRemindersService) RemindersForChannel(channelID string) []*models.ReminderInfo {
	args := m.Called(channelID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*models.ReminderInfo)
}

func (m *MockRemindersService) ListForUser(userID string) []*models.ReminderInfo {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*models.ReminderInfo)
}

func (m *MockRemindersService) HasReminder(userID, channelID string) bool {
	args := m.Called(userID, channelID)
	return args.Bool(0)
}
