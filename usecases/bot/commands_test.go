package bot

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ocbot/clients"
	"ocbot/core"
	"ocbot/models"
)

func (s *botTestSetup) expectReply() *mock.Call {
	return s.discordClient.On("ReplyToMessage", testChannelID, "msg-1", mock.AnythingOfType("string")).
		Return(&clients.DiscordPostMessageResponse{ChannelID: testChannelID, MessageID: "reply-1"}, nil)
}

func (s *botTestSetup) lastReplyContent() string {
	for _, call := range s.discordClient.Calls {
		if call.Method == "ReplyToMessage" {
			return call.Arguments.String(2)
		}
	}
	return ""
}

func TestHandleCommandIgnoresPlainMessages(t *testing.T) {
	setup := setupBotTest()

	handled, err := setup.usecase.HandleCommand(context.Background(), userMessage("no prefix here"))

	assert.NoError(t, err)
	assert.False(t, handled)
}

func TestHandleCommandIgnoresUnknownCommand(t *testing.T) {
	setup := setupBotTest()

	handled, err := setup.usecase.HandleCommand(context.Background(), userMessage("!frobnicate"))

	assert.NoError(t, err)
	assert.False(t, handled)
}

func TestPingCommand(t *testing.T) {
	setup := setupBotTest()
	setup.expectReply()

	handled, err := setup.usecase.HandleCommand(context.Background(), userMessage("!ping"))

	assert.True(t, handled)
	assert.NoError(t, err)
	assert.Equal(t, "Pong!", setup.lastReplyContent())
}

func TestRemindCommandSetsPreset(t *testing.T) {
	setup := setupBotTest()
	setup.discordClient.On("CanSendMessages", testChannelID, testUserID).Return(true, nil)
	setup.remindersService.On("SetReminder", mock.Anything, testUserID, testChannelID, testGuildID, 15).
		Return(&models.ReminderInfo{UserID: testUserID, ChannelID: testChannelID, CooldownMinutes: 15}, nil)
	setup.expectReply()

	handled, err := setup.usecase.HandleCommand(context.Background(), userMessage("!remind 15m"))

	assert.True(t, handled)
	assert.NoError(t, err)
	assert.Contains(t, setup.lastReplyContent(), "every 15 minutes")
	setup.assertAllExpectations(t)
}

func TestRemindCommandDefaultsToOneMinuteWhenNew(t *testing.T) {
	setup := setupBotTest()
	setup.remindersService.On("HasReminder", testUserID, testChannelID).Return(false)
	setup.discordClient.On("CanSendMessages", testChannelID, testUserID).Return(true, nil)
	setup.remindersService.On("SetReminder", mock.Anything, testUserID, testChannelID, testGuildID, 1).
		Return(&models.ReminderInfo{UserID: testUserID, ChannelID: testChannelID, CooldownMinutes: 1}, nil)
	setup.expectReply()

	handled, err := setup.usecase.HandleCommand(context.Background(), userMessage("!remind"))

	assert.True(t, handled)
	assert.NoError(t, err)
	setup.assertAllExpectations(t)
}

func TestRemindCommandTogglesOffExisting(t *testing.T) {
	setup := setupBotTest()
	setup.remindersService.On("HasReminder", testUserID, testChannelID).Return(true)
	setup.remindersService.On("ClearReminder", mock.Anything, testUserID, testChannelID, testGuildID).
		Return(true, nil)
	setup.expectReply()

	handled, err := setup.usecase.HandleCommand(context.Background(), userMessage("!remind"))

	assert.True(t, handled)
	assert.NoError(t, err)
	assert.Contains(t, setup.lastReplyContent(), "disabled")
	setup.remindersService.AssertNotCalled(t, "SetReminder",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	setup.assertAllExpectations(t)
}

func TestRemindCommandRefusesWithoutSendRights(t *testing.T) {
	setup := setupBotTest()
	setup.discordClient.On("CanSendMessages", testChannelID, testUserID).Return(false, nil)
	setup.expectReply()

	handled, err := setup.usecase.HandleCommand(context.Background(), userMessage("!remind 1h"))

	assert.True(t, handled)
	assert.NoError(t, err)
	assert.Contains(t, setup.lastReplyContent(), "cannot send messages")
	setup.remindersService.AssertNotCalled(t, "SetReminder",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRemindCommandAcceptsChannelMention(t *testing.T) {
	setup := setupBotTest()
	setup.discordClient.On("CanSendMessages", "channel-999", testUserID).Return(true, nil)
	setup.remindersService.On("SetReminder", mock.Anything, testUserID, "channel-999", testGuildID, 60).
		Return(&models.ReminderInfo{UserID: testUserID, ChannelID: "channel-999", CooldownMinutes: 60}, nil)
	setup.expectReply()

	handled, err := setup.usecase.HandleCommand(context.Background(), userMessage("!remind 1h <#channel-999>"))

	assert.True(t, handled)
	assert.NoError(t, err)
	setup.assertAllExpectations(t)
}

func TestRemindCommandRejectsUnknownPreset(t *testing.T) {
	setup := setupBotTest()
	setup.expectReply()

	handled, err := setup.usecase.HandleCommand(context.Background(), userMessage("!remind 7q"))

	assert.True(t, handled)
	assert.NoError(t, err)
	assert.Contains(t, setup.lastReplyContent(), "Unknown interval")
	setup.remindersService.AssertNotCalled(t, "SetReminder",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRemindCommandClears(t *testing.T) {
	setup := setupBotTest()
	setup.remindersService.On("ClearReminder", mock.Anything, testUserID, testChannelID, testGuildID).
		Return(true, nil)
	setup.expectReply()

	handled, err := setup.usecase.HandleCommand(context.Background(), userMessage("!remind None"))

	assert.True(t, handled)
	assert.NoError(t, err)
	assert.Contains(t, setup.lastReplyContent(), "disabled")
	setup.assertAllExpectations(t)
}

func TestRemindersCommandListsActive(t *testing.T) {
	setup := setupBotTest()
	setup.remindersService.On("ListForUser", testUserID).Return([]*models.ReminderInfo{
		{UserID: testUserID, ChannelID: "channel-a", CooldownMinutes: 5},
		{UserID: testUserID, ChannelID: "channel-b", CooldownMinutes: 60},
	})
	setup.expectReply()

	handled, err := setup.usecase.HandleCommand(context.Background(), userMessage("!reminders"))

	assert.True(t, handled)
	assert.NoError(t, err)
	content := setup.lastReplyContent()
	assert.Contains(t, content, "every 5 minutes")
	assert.Contains(t, content, "every 60 minutes")
}

func TestCharAddCommand(t *testing.T) {
	setup := setupBotTest()
	sheet := "Name: Spark\nSpecies: Jolteon\nLevel: 5"
	setup.charactersService.On("CreateCharacter",
		mock.Anything, testUserID, testGuildID, "Spark", sheet, testGuildID).
		Return(&models.Character{
			ID: "char_01ABC", UserID: testUserID, GuildID: testGuildID,
			Name: "Spark", Description: sheet,
		}, nil)
	setup.expectReply()

	handled, err := setup.usecase.HandleCommand(context.Background(),
		userMessage("!char add Spark\n"+sheet))

	assert.True(t, handled)
	assert.NoError(t, err)
	assert.Contains(t, setup.lastReplyContent(), "005〙Spark《Jolteon》")
	setup.assertAllExpectations(t)
}

func TestCharReadCommandReportsMiss(t *testing.T) {
	setup := setupBotTest()
	setup.charactersService.On("ResolveCharacter",
		mock.Anything, models.CharacterScope{UserID: testUserID, GuildID: testGuildID}, "Nobody").
		Return(nil, core.ErrCharacterNotFound)
	setup.expectReply()

	handled, err := setup.usecase.HandleCommand(context.Background(), userMessage("!char read Nobody"))

	assert.True(t, handled)
	assert.NoError(t, err)
	assert.Contains(t, setup.lastReplyContent(), "No character matched")
}

func TestCharListCommandEmpty(t *testing.T) {
	setup := setupBotTest()
	setup.charactersService.On("ListCharacters",
		mock.Anything, models.CharacterScope{UserID: testUserID, GuildID: testGuildID}).
		Return([]*models.Character{}, nil)
	setup.expectReply()

	handled, err := setup.usecase.HandleCommand(context.Background(), userMessage("!char list"))

	assert.True(t, handled)
	assert.NoError(t, err)
	assert.Contains(t, setup.lastReplyContent(), "no characters")
}

func TestRollCommand(t *testing.T) {
	setup := setupBotTest()
	setup.expectReply()

	handled, err := setup.usecase.HandleCommand(context.Background(), userMessage("!roll 3d1+2"))

	assert.True(t, handled)
	assert.NoError(t, err)
	assert.Contains(t, setup.lastReplyContent(), "**5**")
}

func TestRollCommandInvalidExpression(t *testing.T) {
	setup := setupBotTest()
	setup.expectReply()

	handled, err := setup.usecase.HandleCommand(context.Background(), userMessage("!roll banana"))

	assert.True(t, handled)
	assert.NoError(t, err)
	assert.Contains(t, setup.lastReplyContent(), "Invalid expression")
}

func TestStatsCommand(t *testing.T) {
	setup := setupBotTest()
	setup.expectReply()

	handled, err := setup.usecase.HandleCommand(context.Background(), userMessage("!stats Jolteon | Basic"))

	assert.True(t, handled)
	assert.NoError(t, err)
	content := setup.lastReplyContent()
	assert.Contains(t, content, "Basic (11 points)")
	for _, name := range []string{"HP", "Attack", "Defense", "Speed"} {
		assert.Contains(t, content, name)
	}
}

func TestSizeCommandConvertsHeight(t *testing.T) {
	setup := setupBotTest()
	setup.expectReply()

	handled, err := setup.usecase.HandleCommand(context.Background(), userMessage(`!size 5'11"`))

	assert.True(t, handled)
	assert.NoError(t, err)
	content := setup.lastReplyContent()
	assert.Contains(t, content, "1.80m")
	assert.Contains(t, content, `5'11"`)
}

func TestSizeCommandWithSpeciesPostsChart(t *testing.T) {
	setup := setupBotTest()
	setup.discordClient.On("PostMessage", testChannelID, mock.MatchedBy(func(params clients.DiscordMessageParams) bool {
		return strings.Contains(params.Content, "Vaporeon") && len(params.Files) == 1
	})).Return(&clients.DiscordPostMessageResponse{ChannelID: testChannelID, MessageID: "chart-1"}, nil)

	handled, err := setup.usecase.HandleCommand(context.Background(), userMessage("!size 1.1m | Vaporeon"))

	assert.True(t, handled)
	assert.NoError(t, err)
	setup.assertAllExpectations(t)
}

func TestSplitHelpers(t *testing.T) {
	name, rest := splitCommand("char add Spark")
	assert.Equal(t, "char", name)
	assert.Equal(t, "add Spark", rest)

	first, body := splitFirstLine("Spark\nName: Spark\nLevel: 5")
	assert.Equal(t, "Spark", first)
	assert.Equal(t, "Name: Spark\nLevel: 5", body)

	left, right := splitPipe("1.8m | Vaporeon")
	assert.Equal(t, "1.8m", left)
	assert.Equal(t, "Vaporeon", right)

	left, right = splitPipe("1.8m")
	assert.Equal(t, "1.8m", left)
	assert.Equal(t, "", right)

	assert.Equal(t, "channel-1", parseChannelArg("<#channel-1>"))
	assert.Equal(t, "channel-1", parseChannelArg("channel-1"))
	assert.Equal(t, "", parseChannelArg("  "))
}
