package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the client application.
type Config struct {
	// Remote API
	APIBaseURL     string
	RequestTimeout time.Duration

	// Session
	SessionFilePath string

	// Images
	MaxBatchImages      int
	MaxImageSizeMB      int
	PreviewDir          string
	PreviewMaxDimension int

	// Messaging
	UnreadPollInterval time.Duration
	UnreadPollBurst    int

	// Checkout return listener
	CallbackPort string

	// App Defaults
	AppName string

	// Optional append-only notification log. Empty disables it.
	NotificationLogPath string
}

// Load configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file, ignoring errors if it doesn't exist
	godotenv.Load()

	cfg := &Config{}

	var err error

	// Helper function to get env var or default
	getEnv := func(key, defaultValue string) string {
		if value, exists := os.LookupEnv(key); exists {
			return value
		}
		return defaultValue
	}

	// Helper function to get required env var
	getRequiredEnv := func(key string) (string, error) {
		value, exists := os.LookupEnv(key)
		if !exists {
			return "", fmt.Errorf("missing required environment variable: %s", key)
		}
		return value, nil
	}

	cfg.APIBaseURL, err = getRequiredEnv("API_BASE_URL")
	if err != nil {
		return nil, err
	}

	homeDir, _ := os.UserHomeDir()
	cfg.SessionFilePath = getEnv("SESSION_FILE_PATH", filepath.Join(homeDir, ".wildshare", "session.json"))
	cfg.PreviewDir = getEnv("PREVIEW_DIR", filepath.Join(os.TempDir(), "wildshare-previews"))
	cfg.CallbackPort = getEnv("CALLBACK_PORT", "8765")
	cfg.AppName = getEnv("APP_NAME", "The Wild Share")
	cfg.NotificationLogPath = getEnv("NOTIFICATION_LOG_PATH", "")

	requestTimeoutSeconds, err := strconv.ParseInt(getEnv("REQUEST_TIMEOUT_SECONDS", "30"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT_SECONDS: %w", err)
	}
	cfg.RequestTimeout = time.Duration(requestTimeoutSeconds) * time.Second

	cfg.MaxBatchImages, err = strconv.Atoi(getEnv("MAX_BATCH_IMAGES", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_BATCH_IMAGES: %w", err)
	}

	cfg.MaxImageSizeMB, err = strconv.Atoi(getEnv("MAX_IMAGE_SIZE_MB", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_IMAGE_SIZE_MB: %w", err)
	}

	cfg.PreviewMaxDimension, err = strconv.Atoi(getEnv("PREVIEW_MAX_DIMENSION", "256"))
	if err != nil {
		return nil, fmt.Errorf("invalid PREVIEW_MAX_DIMENSION: %w", err)
	}

	unreadPollSeconds, err := strconv.ParseInt(getEnv("UNREAD_POLL_INTERVAL_SECONDS", "30"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid UNREAD_POLL_INTERVAL_SECONDS: %w", err)
	}
	cfg.UnreadPollInterval = time.Duration(unreadPollSeconds) * time.Second

	cfg.UnreadPollBurst, err = strconv.Atoi(getEnv("UNREAD_POLL_BURST", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid UNREAD_POLL_BURST: %w", err)
	}

	return cfg, nil
}
