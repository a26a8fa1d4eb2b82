// Package main applies or rolls back the preferences store migrations.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/popeskul/smstask/internal/config"
	"github.com/popeskul/smstask/internal/infrastructure/migrate"
)

const defaultMigrateSteps = 1

func main() {
	var (
		configPath     string
		migrationsPath string
		steps          int
	)

	flag.StringVar(&configPath, "config", "config.yaml", "Path to the config file")
	flag.StringVar(&migrationsPath, "path", "", "Path to migrations directory, overrides the config")
	flag.IntVar(&steps, "steps", defaultMigrateSteps, "Number of migrations to run")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	_ = godotenv.Load()

	args := flag.Args()
	if len(args) == 0 {
		logger.Fatal("Please specify a command: up, down, steps or version")
	}
	command := args[0]

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" || migrationsPath == "" {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		if databaseURL == "" {
			databaseURL = cfg.Database.GetURL()
		}
		if migrationsPath == "" {
			migrationsPath = cfg.Database.MigrationsPath
		}
	}

	runner := migrate.NewRunner(&migrate.Config{
		DatabaseURL:    databaseURL,
		MigrationsPath: migrationsPath,
	}, logger)

	switch command {
	case "up":
		if err := runner.Run(); err != nil {
			logger.Fatal("Failed to run migrations up", zap.Error(err))
		}

	case "down":
		version, err := runner.Steps(-steps)
		if err != nil {
			logger.Fatal("Failed to run migrations down", zap.Error(err))
		}
		if version == 0 {
			logger.Info("Rolled back all migrations")
		} else {
			logger.Info("Rolled back", zap.Uint("version", version))
		}

	case "steps":
		version, err := runner.Steps(steps)
		if err != nil {
			logger.Fatal("Failed to migrate", zap.Int("steps", steps), zap.Error(err))
		}
		logger.Info("Migrated", zap.Uint("version", version))

	case "version":
		version, dirty, err := runner.Version()
		if err != nil {
			logger.Fatal("Failed to get version", zap.Error(err))
		}
		if dirty {
			fmt.Printf("Current version: %d (dirty)\n", version)
		} else {
			fmt.Printf("Current version: %d\n", version)
		}

	default:
		logger.Fatal("Unknown command, use up, down, steps or version", zap.String("command", command))
	}
}
