package main

import (
	"context"
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"she-fix/cmd"
	"she-fix/internal/data/repository"
	"she-fix/internal/seed"
	"she-fix/internal/wire"
	"she-fix/pkg/cache"
	"she-fix/pkg/database"
	"she-fix/pkg/translator"
	"she-fix/pkg/utils"
)

func main() {
	envFile := flag.String("env", ".env", "path to the .env file")
	flag.Parse()

	// Load config
	config, err := utils.LoadConfig(*envFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.Name, config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using production logger.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("storage", config.App.Storage),
		zap.Bool("debug", config.App.Debug),
	)

	ctx := context.Background()

	// Storage
	var repos *repository.Repository
	switch config.App.Storage {
	case utils.StorageMemory:
		repos = repository.NewMemoryRepository(logger)
		logger.Warn("Using in-memory storage; data is lost on restart")
	default:
		if err := database.RunMigrations(config.Database.DSN(), config.Database.MigrationsDir, logger); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}

		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Database connected successfully")
		repos = repository.NewRepository(db, logger)
	}

	if config.App.SeedDemo {
		if _, err := seed.Run(ctx, repos, logger); err != nil {
			logger.Fatal("Failed to seed demo data", zap.Error(err))
		}
	}

	// Translation cache
	var translationCache cache.Cache = cache.NopCache{}
	if config.Redis.Enabled() {
		rdb := cache.NewRedisClient(config.Redis)
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("Redis unavailable, translation cache disabled", zap.Error(err))
		} else {
			translationCache = cache.NewRedisCache(rdb)
			logger.Info("Redis connected", zap.String("addr", config.Redis.Addr))
		}
	}

	tr := translator.NewClient(config.Translate.URL, config.Translate.APIKey, config.Translate.Timeout)
	if config.Translate.APIKey == "" {
		logger.Warn("TRANSLATE_API_KEY not set; translate returns the original text")
	}

	// Wire all dependencies
	app := wire.Wiring(repos, tr, translationCache, config, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
