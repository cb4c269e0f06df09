package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application.
type AppConfig struct {
	BaseDir       string
	BlocksPath    string
	DatabasePath  string
	SocketPath    string
	PidPath       string
	LogDir        string
	LogLevel      string
	Environment   string
	CronSpecCheck string
	WebsiteDelay  time.Duration
	TelegramToken string
	OwnerChatID   int64
}

// Load reads configuration from environment variables and a .env file
// (if present). Every setting has a default; only a malformed value is an
// error.
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables; a missing
	// .env file is not an error.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.BaseDir = os.Getenv("CONTEXT_CLOCK_DIR")
	if cfg.BaseDir == "" {
		userDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine user config dir (set CONTEXT_CLOCK_DIR): %w", err)
		}
		cfg.BaseDir = filepath.Join(userDir, "contextclock")
	}
	if err := os.MkdirAll(cfg.BaseDir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create config dir %s: %w", cfg.BaseDir, err)
	}

	cfg.BlocksPath = envOr("BLOCKS_PATH", filepath.Join(cfg.BaseDir, "blocks.yaml"))
	cfg.DatabasePath = envOr("DATABASE_PATH", filepath.Join(cfg.BaseDir, "history.db"))
	cfg.SocketPath = envOr("SOCKET_PATH", filepath.Join(cfg.BaseDir, "control.sock"))
	cfg.PidPath = envOr("PID_PATH", filepath.Join(cfg.BaseDir, "daemon.pid"))
	cfg.LogDir = envOr("LOG_DIR", filepath.Join(cfg.BaseDir, "logs"))

	cfg.LogLevel = strings.ToLower(envOr("LOG_LEVEL", "info"))
	cfg.Environment = strings.ToLower(envOr("ENVIRONMENT", "development"))

	cfg.CronSpecCheck = envOr("CRON_SPEC_CHECK", "*/5 * * * *") // Default: every 5 minutes

	delayStr := envOr("WEBSITE_OPEN_DELAY", "1500ms")
	delay, err := time.ParseDuration(delayStr)
	if err != nil {
		return nil, fmt.Errorf("invalid WEBSITE_OPEN_DELAY: %w", err)
	}
	cfg.WebsiteDelay = delay

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	ownerIDStr := os.Getenv("OWNER_CHAT_ID")
	if ownerIDStr != "" {
		cfg.OwnerChatID, err = strconv.ParseInt(ownerIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid OWNER_CHAT_ID: %w", err)
		}
	}
	if cfg.TelegramToken != "" && cfg.OwnerChatID == 0 {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is set but OWNER_CHAT_ID is not")
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
