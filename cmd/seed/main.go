package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"she-fix/internal/data/repository"
	"she-fix/internal/seed"
	"she-fix/pkg/database"
	"she-fix/pkg/utils"
)

func main() {
	envFile := flag.String("env", ".env", "path to the .env file")
	flag.Parse()

	config, err := utils.LoadConfig(*envFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.Name+"-seed", "", config.App.Debug)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	if err := database.RunMigrations(config.Database.DSN(), config.Database.MigrationsDir, logger); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db, err := database.InitDB(config.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	result, err := seed.Run(context.Background(), repository.NewRepository(db, logger), logger)
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	fmt.Printf("seeded %d users and %d jobs (password for every account: %s)\n",
		result.Users, result.Jobs, seed.DemoPassword)
}
