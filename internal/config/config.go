package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the crypto reporter application.
type Config struct {
	// Mail transport settings
	SMTPServer     string `mapstructure:"smtp_server"`
	SMTPPort       int    `mapstructure:"smtp_port"`
	EmailUser      string `mapstructure:"email_user"`
	EmailPass      string `mapstructure:"email_pass"`
	RecipientEmail string `mapstructure:"recipient_email"`

	// Watch list, in two alternative forms (JSON array or comma-separated)
	WatchedCoinsJSON string `mapstructure:"watched_coins"`
	WatchedCoinsList string `mapstructure:"watched_coins_list"`

	// Scheduling
	UpdateIntervalMinutes int    `mapstructure:"update_interval_minutes"`
	DailySendTime         string `mapstructure:"daily_send_time"`

	// Base URL for the price API (configurable for testing)
	CoingeckoBaseURL string `mapstructure:"coingecko_base_url"`
}

// Load reads configuration from environment variables, with an optional
// .env file loaded first. Environment variables take precedence.
//
// Expected environment variables:
//   - EMAIL_USER (required)
//   - EMAIL_PASS (required)
//   - RECIPIENT_EMAIL (required)
//   - SMTP_SERVER (optional, defaults to smtp.gmail.com)
//   - SMTP_PORT (optional, defaults to 587)
//   - WATCHED_COINS (optional, JSON array of coin ids)
//   - WATCHED_COINS_LIST (optional, comma-separated coin ids)
//   - UPDATE_INTERVAL_MINUTES (optional, defaults to 60)
//   - DAILY_SEND_TIME (optional, HH:MM, defaults to 09:00)
//   - COINGECKO_BASE_URL (optional, defaults to production)
func Load() (*Config, error) {
	// Load .env if present (ignore if not found)
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("smtp_server", "smtp.gmail.com")
	v.SetDefault("smtp_port", 587)
	v.SetDefault("update_interval_minutes", 60)
	v.SetDefault("daily_send_time", "09:00")
	v.SetDefault("coingecko_base_url", "https://api.coingecko.com/api/v3")

	// Bind environment variables
	v.BindEnv("smtp_server", "SMTP_SERVER")
	v.BindEnv("smtp_port", "SMTP_PORT")
	v.BindEnv("email_user", "EMAIL_USER")
	v.BindEnv("email_pass", "EMAIL_PASS")
	v.BindEnv("recipient_email", "RECIPIENT_EMAIL")
	v.BindEnv("watched_coins", "WATCHED_COINS")
	v.BindEnv("watched_coins_list", "WATCHED_COINS_LIST")
	v.BindEnv("update_interval_minutes", "UPDATE_INTERVAL_MINUTES")
	v.BindEnv("daily_send_time", "DAILY_SEND_TIME")
	v.BindEnv("coingecko_base_url", "COINGECKO_BASE_URL")

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	var missing []string
	if config.EmailUser == "" {
		missing = append(missing, "EMAIL_USER")
	}
	if config.EmailPass == "" {
		missing = append(missing, "EMAIL_PASS")
	}
	if config.RecipientEmail == "" {
		missing = append(missing, "RECIPIENT_EMAIL")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	if config.UpdateIntervalMinutes <= 0 {
		return nil, fmt.Errorf("UPDATE_INTERVAL_MINUTES must be positive, got %d", config.UpdateIntervalMinutes)
	}

	return config, nil
}
