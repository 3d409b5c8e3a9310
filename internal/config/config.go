package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppEnv        string
	LogLevel      slog.Level
	LogFile       string // Empty means stderr
	DatabasePath  string
	BcryptCost    int64
	ThumbnailSize int64 // Thumbnail bounding box in pixels
}

func LoadConfig() *Config {
	return &Config{
		AppEnv:        getEnv("APP_ENV", "development"),          // Default development
		LogLevel:      getLogLevel(),                             // Default INFO
		LogFile:       getEnv("LOG_FILE", "marketplace.log"),     // Default marketplace.log
		DatabasePath:  getEnv("DATABASE_PATH", "localmarket.db"), // Default localmarket.db
		BcryptCost:    getEnvAsInt64("BCRYPT_COST", 10),          // Default bcrypt.DefaultCost
		ThumbnailSize: getEnvAsInt64("THUMBNAIL_SIZE", 100),      // Default 100x100
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil && value > 0 {
			return value
		}
	}
	return fallback
}

func getLogLevel() slog.Level {
	levelStr := getEnv("LOG_LEVEL", "INFO")

	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
