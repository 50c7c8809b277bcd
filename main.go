// main.go
package main

import (
	"context"
	"log"
	"time"

	"clicksafe/cmd"
	"clicksafe/internal/data/repository"
	"clicksafe/internal/wire"
	"clicksafe/pkg/database"
	"clicksafe/pkg/utils"

	"go.uber.org/zap"
)

func main() {
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

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Apply schema migrations
	if err := database.RunMigrations(context.Background(), config.Database); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	repos := repository.NewRepository(db, logger)

	// Sweep expired OTP codes in the background. Verification already treats
	// them as absent, this only reclaims storage.
	go sweepExpiredOTPs(repos.OTP, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}

func sweepExpiredOTPs(otps repository.OTPRepository, logger *zap.Logger) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		n, err := otps.DeleteExpired(context.Background())
		if err != nil {
			logger.Warn("OTP sweep failed", zap.Error(err))
			continue
		}
		if n > 0 {
			logger.Debug("Swept expired OTPs", zap.Int64("deleted", n))
		}
	}
}
