package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/gorilla/mux"

	discordclient "ocbot/clients/discord"
	"ocbot/config"
	"ocbot/db"
	"ocbot/handlers"
	"ocbot/middleware"
	"ocbot/services/characters"
	"ocbot/services/reminders"
	"ocbot/services/txmanager"
	"ocbot/usecases/bot"
)

func main() {
	if err := run(); err != nil {
		log.Printf("❌ Fatal error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Initialize error alert middleware
	alertMiddleware := middleware.NewErrorAlertMiddleware(middleware.AlertConfig{
		WebhookURL:  cfg.DiscordConfig.AlertWebhookURL,
		Environment: cfg.Environment,
		AppName:     "ocbot",
		LogsURL:     cfg.ServerLogsURL,
	})

	// Initialize database connection
	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	// Initialize repositories with shared connection
	charactersRepo := db.NewPostgresCharactersRepository(dbConn, cfg.DatabaseSchema)
	remindersRepo := db.NewPostgresRemindersRepository(dbConn, cfg.DatabaseSchema)

	// Initialize transaction manager
	txManager := txmanager.NewTransactionManager(dbConn)

	charactersService := characters.NewCharactersService(charactersRepo)
	remindersService := reminders.NewRemindersService(remindersRepo)

	// Open the Discord gateway session
	session, err := discordgo.New("Bot " + cfg.DiscordConfig.BotToken)
	if err != nil {
		return err
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsGuildPresences |
		discordgo.IntentMessageContent

	discordClient := discordclient.NewDiscordClient(session)
	botUseCase := bot.NewBotUseCase(discordClient, charactersService, remindersService, txManager)

	discordHandler := handlers.NewDiscordHandler(botUseCase, discordClient, alertMiddleware)
	discordHandler.Register(session)

	if err := session.Open(); err != nil {
		return err
	}
	defer session.Close()

	// Slash command sync needs the application ID, which the gateway
	// handshake fills in.
	if err := discordHandler.SyncCommands(session); err != nil {
		log.Printf("⚠️ Failed to sync slash commands: %v", err)
	}

	// Seed the reminder registry before the sweep starts
	if err := remindersService.LoadFromStore(context.Background()); err != nil {
		return err
	}

	// Start the periodic reminder sweep
	sweepTicker := time.NewTicker(cfg.SweepInterval)
	go func() {
		for range sweepTicker.C {
			_ = alertMiddleware.WrapBackgroundTask("SweepReminders", func() error {
				return botUseCase.SweepReminders(context.Background())
			})()
		}
	}()
	defer sweepTicker.Stop()

	// Create a new router
	router := mux.NewRouter()
	router.Handle("/health", handlers.NewHealthHandler(dbConn)).Methods("GET")

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           alertMiddleware.HTTPMiddleware(router),
		ReadHeaderTimeout: 30 * time.Second,
	}

	return handleGracefulShutdown(server)
}

func handleGracefulShutdown(server *http.Server) error {
	// Channel to listen for interrupt signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		log.Printf("✅ Listening on http://localhost%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("❌ Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	<-stop
	log.Printf("🛑 Shutdown signal received, cleaning up...")

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown server gracefully
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("❌ Server shutdown error: %v", err)
		return err
	}

	log.Printf("✅ Server stopped gracefully")
	return nil
}
