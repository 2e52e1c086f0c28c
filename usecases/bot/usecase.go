package bot

import (
	"ocbot/clients"
	"ocbot/services"
)

// BotUseCase routes inbound Discord events to the character and reminder
// services and runs the periodic reminder sweep.
type BotUseCase struct {
	discordClient     clients.DiscordClient
	charactersService services.CharactersService
	remindersService  services.RemindersService
	txManager         services.TransactionManager
	echoes            *echoCorrelator
}

// NewBotUseCase creates a new instance of BotUseCase
func NewBotUseCase(
	discordClient clients.DiscordClient,
	charactersService services.CharactersService,
	remindersService services.RemindersService,
	txManager services.TransactionManager,
) *BotUseCase {
	return &BotUseCase{
		discordClient:     discordClient,
		charactersService: charactersService,
		remindersService:  remindersService,
		txManager:         txManager,
		echoes:            newEchoCorrelator(),
	}
}
