package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/aliskhannn/cow-flashcards-bot/internal/config"
	"github.com/aliskhannn/cow-flashcards-bot/internal/delivery/telegram"
	"github.com/aliskhannn/cow-flashcards-bot/internal/infra/postgres"
	"github.com/aliskhannn/cow-flashcards-bot/internal/logger"
	"github.com/aliskhannn/cow-flashcards-bot/internal/repository"
	"github.com/aliskhannn/cow-flashcards-bot/internal/service"
	"github.com/aliskhannn/cow-flashcards-bot/internal/storage"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, lg); err != nil && !errors.Is(err, context.Canceled) {
		lg.Fatal("bot stopped with error", zap.Error(err))
	}

	lg.Info("shutdown signal received")
}

func run(ctx context.Context, cfg *config.Config, lg *zap.Logger) error {
	// Initialize the catalog.
	cowRepo, err := repository.NewCowRepository(cfg.CatalogPath)
	if err != nil {
		return err
	}
	lg.Info("cow catalog loaded",
		zap.Int("size", cowRepo.Size()),
		zap.String("path", cfg.CatalogPath),
	)

	// Users go to PostgreSQL when configured, memory otherwise.
	var userRepo service.UserRepository
	if cfg.DB.Enabled() {
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return err
		}

		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := postgres.Migrate(ctx, postgres.NewTransactor(pool)); err != nil {
			return err
		}

		userRepo = repository.NewUserRepository(pool)
		lg.Info("using postgres user registry")
	} else {
		userRepo = storage.NewUserStorage()
		lg.Info("DATABASE_URL not set, using in-memory user registry")
	}

	rounds := storage.NewRoundStorage()
	picker := service.NewIndexPicker(cfg.Quiz.Seed)

	roundService := service.NewRoundService(cowRepo, picker, rounds)
	userService := service.NewUserService(userRepo)
	cleanupService := service.NewCleanupService(rounds, cfg.Quiz.RoundTTL, cfg.Quiz.CleanupSchedule, lg)

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		return err
	}
	bot.Debug = cfg.BotDebug
	lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Start over with a new cow",
		},
		{
			Command:     "cow",
			Description: "Show the current cow again",
		},
		{
			Command:     "reveal",
			Description: "Reveal the name after a wrong guess",
		},
		{
			Command:     "help",
			Description: "Help",
		},
	}

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	go func() {
		if err := cleanupService.Start(ctx); err != nil {
			lg.Error("round cleanup failed", zap.Error(err))
		}
	}()

	handler := telegram.NewHandler(bot, lg, roundService, userService, cfg.ImagesDir)
	return handler.Run(ctx)
}
