package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vocaquiz/internal/config"
	"vocaquiz/internal/handler"
	"vocaquiz/internal/middleware"
	"vocaquiz/internal/repository/postgres"
	"vocaquiz/internal/service"
	"vocaquiz/internal/vocab"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Vocaquiz Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Connect to database with retries
	db, err := connectDatabase(cfg.DSN(), logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	// Run migrations
	if err := runMigrations(db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	logger.Info("Database migrations completed")

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	vocabRepo := postgres.NewVocabRepo(db)

	// Load vocabulary once; the bot must not serve without it
	store, err := loadVocabulary(vocabRepo)
	if err != nil {
		logger.Fatal("Failed to load vocabulary", zap.Error(err))
	}

	logger.Info("Vocabulary loaded", zap.Int("words", store.Len()))

	// Initialize services
	userService := service.NewUserService(userRepo)
	quizService := service.NewQuizService(store, logger)
	statsService := service.NewStatsService(userRepo, quizService, logger)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:     cfg.BotToken,
		Poller:    &tele.LongPoller{Timeout: 10 * time.Second},
		ParseMode: tele.ModeMarkdown,
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	bot.Use(middleware.RecordUser(userService, logger))

	// Initialize handler
	h := handler.NewHandler(bot, quizService, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start stats job in background
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go runStatsJob(ctx, statsService, logger)

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown; sessions are ephemeral and not persisted
	bot.Stop()
	cancel()

	logger.Info("Bot stopped gracefully")
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		// Connection successful
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply")
	} else {
		logger.Info("Migrations applied successfully")
	}

	return nil
}

// loadVocabulary reads the vocabulary table into an immutable store
func loadVocabulary(vocabRepo *postgres.VocabRepo) (*vocab.Store, error) {
	pairs, err := vocabRepo.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary: %w", err)
	}

	store, err := vocab.NewStore(pairs)
	if err != nil {
		return nil, fmt.Errorf("invalid vocabulary: %w", err)
	}

	return store, nil
}

// runStatsJob periodically logs usage figures
func runStatsJob(ctx context.Context, statsService *service.StatsService, logger *zap.Logger) {
	// Log once at startup
	if err := statsService.LogUsage(); err != nil {
		logger.Error("Failed to log initial usage stats", zap.Error(err))
	}

	ticker := time.NewTicker(15 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stats job stopped")
			return
		case <-ticker.C:
			if err := statsService.LogUsage(); err != nil {
				logger.Error("Failed to log usage stats", zap.Error(err))
			}
		}
	}
}
