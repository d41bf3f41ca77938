package config

import (
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress  string
	DatabaseURI string
	SiteURL     string
	LogLevel    string

	MerchantLogin       string
	Password1           string
	Password2           string
	TestMode            bool
	RobokassaPaymentURL string

	TelegramBotToken string
	TelegramChatID   string
	TelegramAPIURL   string

	AdminLogin        string
	AdminPasswordHash string
	JWTSecret         string
	AdminTokenTTL     time.Duration

	NotifyWorkers     int
	NotifyQueueSize   int
	NotifyMaxAttempts int
	ShutdownTimeout   time.Duration
}

const (
	defaultRunAddress        = ":8080"
	defaultLogLevel          = "info"
	defaultPaymentURL        = "https://auth.robokassa.ru/Merchant/Index.aspx"
	defaultTelegramAPIURL    = "https://api.telegram.org"
	defaultAdminLogin        = "admin"
	defaultJWTSecret         = "change-me-in-production"
	defaultAdminTokenTTL     = 12 * time.Hour
	defaultNotifyWorkers     = 2
	defaultNotifyQueueSize   = 64
	defaultNotifyMaxAttempts = 3
	defaultShutdownTimeout   = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:          getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:         getString(lookup, "DATABASE_URI", ""),
		SiteURL:             getString(lookup, "SITE_URL", ""),
		LogLevel:            getString(lookup, "LOG_LEVEL", defaultLogLevel),
		MerchantLogin:       getString(lookup, "ROBOKASSA_MERCHANT_LOGIN", ""),
		Password1:           getString(lookup, "ROBOKASSA_PASSWORD1", ""),
		Password2:           getString(lookup, "ROBOKASSA_PASSWORD2", ""),
		TestMode:            getBool(lookup, "ROBOKASSA_TEST_MODE", false),
		RobokassaPaymentURL: getString(lookup, "ROBOKASSA_PAYMENT_URL", defaultPaymentURL),
		TelegramBotToken:    getString(lookup, "TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:      getString(lookup, "TELEGRAM_CHAT_ID", ""),
		TelegramAPIURL:      getString(lookup, "TELEGRAM_API_URL", defaultTelegramAPIURL),
		AdminLogin:          getString(lookup, "ADMIN_LOGIN", defaultAdminLogin),
		AdminPasswordHash:   getString(lookup, "ADMIN_PASSWORD_HASH", ""),
		JWTSecret:           getString(lookup, "JWT_SECRET", defaultJWTSecret),
		AdminTokenTTL:       getDuration(lookup, "ADMIN_TOKEN_TTL", defaultAdminTokenTTL),
		NotifyWorkers:       getInt(lookup, "NOTIFY_WORKERS", defaultNotifyWorkers),
		NotifyQueueSize:     getInt(lookup, "NOTIFY_QUEUE_SIZE", defaultNotifyQueueSize),
		NotifyMaxAttempts:   getInt(lookup, "NOTIFY_MAX_ATTEMPTS", defaultNotifyMaxAttempts),
		ShutdownTimeout:     getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("webstudio", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		tokenTTLStr        = cfg.AdminTokenTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN, in-memory storage when empty")
	fs.StringVar(&cfg.SiteURL, "site-url", cfg.SiteURL, "Public site base URL")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.MerchantLogin, "merchant-login", cfg.MerchantLogin, "Robokassa merchant login")
	fs.BoolVar(&cfg.TestMode, "test-mode", cfg.TestMode, "Send payments to the gateway sandbox")
	fs.StringVar(&cfg.RobokassaPaymentURL, "payment-url", cfg.RobokassaPaymentURL, "Robokassa payment page URL")
	fs.StringVar(&cfg.TelegramChatID, "telegram-chat", cfg.TelegramChatID, "Telegram chat for notifications")
	fs.StringVar(&cfg.AdminLogin, "admin-login", cfg.AdminLogin, "Back office login")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing admin tokens")
	fs.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Admin token lifetime")
	fs.IntVar(&cfg.NotifyWorkers, "notify-workers", cfg.NotifyWorkers, "Number of notification workers")
	fs.IntVar(&cfg.NotifyQueueSize, "notify-queue", cfg.NotifyQueueSize, "Notification queue capacity")
	fs.IntVar(&cfg.NotifyMaxAttempts, "notify-attempts", cfg.NotifyMaxAttempts, "Delivery attempts per notification")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.AdminTokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimSpace(string(content))
	}

	if cfg.NotifyWorkers <= 0 {
		cfg.NotifyWorkers = defaultNotifyWorkers
	}

	if cfg.NotifyQueueSize <= 0 {
		cfg.NotifyQueueSize = defaultNotifyQueueSize
	}

	if cfg.NotifyMaxAttempts <= 0 {
		cfg.NotifyMaxAttempts = defaultNotifyMaxAttempts
	}

	if cfg.AdminTokenTTL <= 0 {
		cfg.AdminTokenTTL = defaultAdminTokenTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	cfg.SiteURL = strings.TrimRight(cfg.SiteURL, "/")
	if cfg.SiteURL == "" {
		return nil, fmt.Errorf("site URL must be provided")
	}
	if u, err := url.Parse(cfg.SiteURL); err != nil || !u.IsAbs() {
		return nil, fmt.Errorf("site URL must be absolute")
	}

	if cfg.MerchantLogin == "" {
		return nil, fmt.Errorf("robokassa merchant login must be provided")
	}

	if cfg.Password1 == "" || cfg.Password2 == "" {
		return nil, fmt.Errorf("robokassa passwords must be provided")
	}

	if cfg.Password1 == cfg.Password2 {
		return nil, fmt.Errorf("robokassa password1 and password2 must differ")
	}

	return cfg, nil
}

// TelegramEnabled reports whether notifications can be delivered.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != ""
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
