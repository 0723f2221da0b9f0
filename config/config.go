package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr          string
	DatabaseURL         string
	Location            *time.Location
	ImmediateWindowDays int
	CodePollAttempts    int
	CodePollInterval    time.Duration
	BrowserHeadless     bool
	SiteProfile         string
	CredentialKey       string
	RedisAddr           string
	KafkaBrokers        []string
	KafkaTopic          string
	DiscordBotToken     string
	DiscordChannelID    string
	WebhookSecret       string
	APIKey              string
}

// Load reads an optional .env file, then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Config{
		ListenAddr:       getenv("LISTEN_ADDR", ":9090"),
		DatabaseURL:      getenv("DATABASE_URL", ""),
		SiteProfile:      getenv("SITE_PROFILE", ""),
		CredentialKey:    getenv("CREDENTIAL_KEY", ""),
		RedisAddr:        getenv("REDIS_ADDR", ""),
		KafkaTopic:       getenv("KAFKA_TOPIC", "tennis.attempts"),
		DiscordBotToken:  getenv("DISCORD_BOT_TOKEN", ""),
		DiscordChannelID: getenv("DISCORD_CHANNEL_ID", ""),
		WebhookSecret:    getenv("WEBHOOK_SECRET", ""),
		APIKey:           getenv("API_KEY", ""),
	}

	loc, err := time.LoadLocation(getenv("TIMEZONE", "America/Los_Angeles"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	cfg.Location = loc

	cfg.ImmediateWindowDays, err = strconv.Atoi(getenv("IMMEDIATE_WINDOW_DAYS", "7"))
	if err != nil || cfg.ImmediateWindowDays < 1 {
		return Config{}, fmt.Errorf("invalid IMMEDIATE_WINDOW_DAYS")
	}

	cfg.CodePollAttempts, err = strconv.Atoi(getenv("CODE_POLL_ATTEMPTS", "15"))
	if err != nil || cfg.CodePollAttempts < 1 {
		return Config{}, fmt.Errorf("invalid CODE_POLL_ATTEMPTS")
	}

	cfg.CodePollInterval, err = time.ParseDuration(getenv("CODE_POLL_INTERVAL", "1s"))
	if err != nil || cfg.CodePollInterval <= 0 {
		return Config{}, fmt.Errorf("invalid CODE_POLL_INTERVAL")
	}

	cfg.BrowserHeadless, err = strconv.ParseBool(getenv("BROWSER_HEADLESS", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid BROWSER_HEADLESS")
	}

	for _, broker := range strings.Split(getenv("KAFKA_BROKERS", ""), ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, broker)
		}
	}

	return cfg, nil
}

// RequireStorage checks the settings the server and booking commands cannot
// run without.
func (c Config) RequireStorage() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.CredentialKey == "" {
		return fmt.Errorf("CREDENTIAL_KEY is required (base64, 32 bytes)")
	}
	return nil
}

func getenv(k, d string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d
	}
	return v
}
