package config_test

import (
	"testing"
	"time"

	"github.com/hanksha/tennis-booking-backend/config"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{"LISTEN_ADDR", "DATABASE_URL", "CREDENTIAL_KEY", "TIMEZONE", "IMMEDIATE_WINDOW_DAYS", "CODE_POLL_ATTEMPTS", "CODE_POLL_INTERVAL", "BROWSER_HEADLESS", "KAFKA_BROKERS", "KAFKA_TOPIC"} {
			t.Setenv(k, "")
		}

		cfg, err := config.FromEnv()

		require.NoError(t, err)
		require.Equal(t, ":9090", cfg.ListenAddr)
		require.Equal(t, "America/Los_Angeles", cfg.Location.String())
		require.Equal(t, 7, cfg.ImmediateWindowDays)
		require.Equal(t, 15, cfg.CodePollAttempts)
		require.Equal(t, time.Second, cfg.CodePollInterval)
		require.True(t, cfg.BrowserHeadless)
		require.Equal(t, "tennis.attempts", cfg.KafkaTopic)
		require.Empty(t, cfg.KafkaBrokers)
		require.Error(t, cfg.RequireStorage())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("LISTEN_ADDR", ":8081")
		t.Setenv("DATABASE_URL", "postgres://localhost/tennis")
		t.Setenv("CREDENTIAL_KEY", "a2V5")
		t.Setenv("TIMEZONE", "UTC")
		t.Setenv("IMMEDIATE_WINDOW_DAYS", "3")
		t.Setenv("CODE_POLL_ATTEMPTS", "30")
		t.Setenv("CODE_POLL_INTERVAL", "500ms")
		t.Setenv("BROWSER_HEADLESS", "false")
		t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
		t.Setenv("WEBHOOK_SECRET", "s3cret")
		t.Setenv("API_KEY", "k3y")

		cfg, err := config.FromEnv()

		require.NoError(t, err)
		require.Equal(t, ":8081", cfg.ListenAddr)
		require.Equal(t, time.UTC, cfg.Location)
		require.Equal(t, 3, cfg.ImmediateWindowDays)
		require.Equal(t, 30, cfg.CodePollAttempts)
		require.Equal(t, 500*time.Millisecond, cfg.CodePollInterval)
		require.False(t, cfg.BrowserHeadless)
		require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
		require.Equal(t, "s3cret", cfg.WebhookSecret)
		require.Equal(t, "k3y", cfg.APIKey)
		require.NoError(t, cfg.RequireStorage())
	})

	for name, env := range map[string][2]string{
		"bad timezone":      {"TIMEZONE", "Mars/Olympus"},
		"bad window":        {"IMMEDIATE_WINDOW_DAYS", "0"},
		"bad poll attempts": {"CODE_POLL_ATTEMPTS", "many"},
		"bad poll interval": {"CODE_POLL_INTERVAL", "1"},
		"bad headless":      {"BROWSER_HEADLESS", "maybe"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Setenv(env[0], env[1])

			_, err := config.FromEnv()
			require.Error(t, err)
		})
	}
}
