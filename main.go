// main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cinema-ticketing/cmd"
	"cinema-ticketing/internal/data/repository"
	"cinema-ticketing/internal/wire"
	"cinema-ticketing/pkg/database"
	"cinema-ticketing/pkg/middleware"
	"cinema-ticketing/pkg/telemetry"
	"cinema-ticketing/pkg/utils"

	"go.uber.org/zap"
)

const usage = `usage: cinema-ticketing [command]

commands:
  serve          run the HTTP API (default)
  migrate        apply database migrations and exit
  seed [-reset]  create sample seat layouts, movies and showtimes
  hash-admin-key <key>
                 print a bcrypt hash usable as ADMIN_API_KEY`

func main() {
	command := "serve"
	args := os.Args[1:]
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch command {
	case "serve":
		err = serve(ctx, config, logger)
	case "migrate":
		err = cmd.Migrate(config.Database, logger)
	case "seed":
		err = seed(ctx, args, config, logger)
	case "hash-admin-key":
		err = hashAdminKey(args)
	default:
		log.Println(usage)
		os.Exit(2)
	}

	if err != nil {
		logger.Fatal("Command failed", zap.String("command", command), zap.Error(err))
	}
}

func serve(ctx context.Context, config *utils.Config, logger *zap.Logger) error {
	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	env := "production"
	if config.App.Debug {
		env = "development"
	}
	shutdownTelemetry, err := telemetry.Init(ctx, config.Telemetry, env, logger)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(flushCtx); err != nil {
			logger.Warn("Failed to flush telemetry", zap.Error(err))
		}
	}()

	if config.Database.AutoMigrate {
		if err := cmd.Migrate(config.Database, logger); err != nil {
			return err
		}
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Response cache is optional, the API stays correct without it
	var cache middleware.ResponseStore
	if config.Cache.Enabled && config.Redis.Addr != "" {
		client, err := database.InitRedis(config.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, serving catalog without cache", zap.Error(err))
		} else {
			defer client.Close()
			cache = middleware.NewRedisStore(client, config.Cache.Prefix)
			logger.Info("Redis connected successfully", zap.String("addr", config.Redis.Addr))
		}
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(db, repos, cache, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	return cmd.APIServer(ctx, app.Router, config.App.Port, logger)
}

func seed(ctx context.Context, args []string, config *utils.Config, logger *zap.Logger) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	reset := fs.Bool("reset", false, "delete existing data before seeding")
	if err := fs.Parse(args); err != nil {
		return err
	}

	db, err := database.InitDB(config.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	return cmd.Seed(ctx, db, repository.NewRepository(db, logger), *reset, logger)
}

func hashAdminKey(args []string) error {
	if len(args) != 1 || args[0] == "" {
		log.Println(usage)
		os.Exit(2)
	}

	hash, err := utils.HashSecret(args[0])
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}
