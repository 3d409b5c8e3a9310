package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/SoyOusa/localcommunitymarketplace/internal/config"
	"github.com/SoyOusa/localcommunitymarketplace/internal/credentials"
	"github.com/SoyOusa/localcommunitymarketplace/internal/database"
	"github.com/SoyOusa/localcommunitymarketplace/internal/database/repository"
	"github.com/SoyOusa/localcommunitymarketplace/internal/database/service"
	"github.com/SoyOusa/localcommunitymarketplace/internal/imagecache"
	"github.com/SoyOusa/localcommunitymarketplace/internal/logger"
	"github.com/SoyOusa/localcommunitymarketplace/internal/screen"
	"github.com/SoyOusa/localcommunitymarketplace/internal/session"
	"github.com/SoyOusa/localcommunitymarketplace/internal/terminal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "marketplace:", err)
		os.Exit(1)
	}
}

// run owns every deferred cleanup so main can exit after they finish
func run() error {
	// 1. Config (.env is optional)
	_ = godotenv.Load()
	cfg := config.LoadConfig()

	// 2. Logger. Stdout belongs to the terminal UI.
	logOut, closeLog := openLogOutput(cfg.LogFile)
	defer closeLog()
	appLogger := logger.New(cfg, logOut)

	appLogger.Info("🚀 [Marketplace] Starting...",
		"environment", cfg.AppEnv,
		"database", cfg.DatabasePath,
	)

	// 3. Open Database
	db, err := database.Open(cfg, appLogger)
	if err != nil {
		appLogger.Error("❌ Failed to open database", "error", err)
		return fmt.Errorf("could not open the marketplace database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			appLogger.Warn("⚠️ Failed to close database", "error", err)
		}
	}()

	// 4. Initialize Repositories
	userRepo := repository.NewUserRepository(db)
	listingRepo := repository.NewListingRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// 5. Initialize Services
	hasher := credentials.NewHasher(int(cfg.BcryptCost))
	images := imagecache.New(int(cfg.ThumbnailSize), appLogger)
	defer images.Release()

	services := screen.Services{
		Auth:     service.NewAuthService(userRepo, hasher, appLogger),
		Users:    service.NewUserService(userRepo, images, appLogger),
		Listings: service.NewListingService(listingRepo, userRepo, appLogger),
		Messages: service.NewMessageService(messageRepo, userRepo, listingRepo, appLogger),
	}

	// 6. Screens
	sess := session.New()
	controller := screen.NewController(services, sess, images, appLogger)

	appLogger.Info("🖥️ [Marketplace] Terminal UI ready", "session_id", sess.ID())
	if err := terminal.Run(controller, terminal.NewConsole(os.Stdin, os.Stdout), os.Stdout, appLogger); err != nil {
		appLogger.Error("❌ Terminal UI stopped", "error", err)
		return err
	}

	appLogger.Info("👋 [Marketplace] Goodbye")
	return nil
}

func openLogOutput(path string) (io.Writer, func()) {
	if path == "" {
		return os.Stderr, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Falling back to stderr logging:", err)
		return os.Stderr, func() {}
	}
	return f, func() { _ = f.Close() }
}
