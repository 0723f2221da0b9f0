package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hanksha/tennis-booking-backend/browser"
	"github.com/hanksha/tennis-booking-backend/config"
	"github.com/hanksha/tennis-booking-backend/site"
	"github.com/hanksha/tennis-booking-backend/verification"
	"github.com/redis/go-redis/v9"
)

func loadProfile(cfg config.Config) (*site.Profile, error) {
	if cfg.SiteProfile == "" {
		return site.Default(), nil
	}

	profile, err := site.Load(cfg.SiteProfile)
	if err != nil {
		return nil, fmt.Errorf("failed to load site profile: %w", err)
	}

	return profile, nil
}

func newLauncher(cfg config.Config) browser.Launcher {
	chrome := &browser.Chrome{Headless: cfg.BrowserHeadless}

	if tz := cfg.Location.String(); tz != "Local" {
		chrome.Timezone = tz
	}

	return chrome
}

// newMailboxStore picks Redis when REDIS_ADDR is set, so that codes posted
// to one process reach a booking running in another. The returned close func
// is never nil.
func newMailboxStore(ctx context.Context, cfg config.Config) (verification.Store, func() error, error) {
	logger := slog.Default().With("component", "main")

	if cfg.RedisAddr == "" {
		logger.Info("using in-memory verification mailbox")
		return verification.NewMemoryStore(verification.DefaultTTL), func() error { return nil }, nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("unable to reach redis at %v: %w", cfg.RedisAddr, err)
	}

	logger.Info("using redis verification mailbox", "addr", cfg.RedisAddr)

	return verification.NewRedisStore(client, verification.DefaultTTL), client.Close, nil
}
