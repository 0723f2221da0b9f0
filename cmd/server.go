package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/tennis-booking-backend/api"
	bk "github.com/hanksha/tennis-booking-backend/booking"
	"github.com/hanksha/tennis-booking-backend/config"
	"github.com/hanksha/tennis-booking-backend/court"
	"github.com/hanksha/tennis-booking-backend/credential"
	"github.com/hanksha/tennis-booking-backend/database"
	"github.com/hanksha/tennis-booking-backend/discord"
	"github.com/hanksha/tennis-booking-backend/events"
	"github.com/hanksha/tennis-booking-backend/probe"
	"github.com/hanksha/tennis-booking-backend/reservation"
	"github.com/hanksha/tennis-booking-backend/verification"
	"github.com/spf13/cobra"
)

func newServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Run the HTTP API and the deferred reservation jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if err := cfg.RequireStorage(); err != nil {
				return err
			}

			if cfg.APIKey == "" {
				return fmt.Errorf("API_KEY is required")
			}

			return runServer(cmd.Context(), cfg)
		},
	}
}

func runServer(ctx context.Context, cfg config.Config) error {
	logger := slog.Default().With("component", "main")

	pool, err := database.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	cipher, err := credential.NewCipher(cfg.CredentialKey)
	if err != nil {
		return err
	}

	credentials := credential.NewRepository(pool, cipher)

	courtRepo := court.NewRepository(pool)
	if err := courtRepo.SeedCourts(ctx, court.DefaultNames); err != nil {
		logger.Warn("failed to seed courts", "err", err)
	}
	courts := court.NewService(courtRepo)

	store, closeStore, err := newMailboxStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	mailbox := verification.NewMailbox(store)

	profile, err := loadProfile(cfg)
	if err != nil {
		return err
	}

	launcher := newLauncher(cfg)

	driver := reservation.NewDriver(launcher, profile, mailbox,
		reservation.WithCodePolling(cfg.CodePollAttempts, cfg.CodePollInterval),
		reservation.WithLocation(cfg.Location),
	)

	prober := probe.NewProber(launcher, profile, cfg.Location)

	opts := []bk.Option{
		bk.WithLocation(cfg.Location),
		bk.WithImmediateWindow(cfg.ImmediateWindowDays),
	}

	if cfg.DiscordBotToken != "" && cfg.DiscordChannelID != "" {
		client := discord.NewClient(cfg.DiscordBotToken)
		opts = append(opts, bk.WithNotifier(discord.NewNotifier(client, cfg.DiscordChannelID, cfg.Location)))
		logger.Info("discord notifications enabled", "channel", cfg.DiscordChannelID)
	}

	if len(cfg.KafkaBrokers) > 0 {
		producer := events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer producer.Close()

		opts = append(opts, bk.WithNotifier(producer))
		logger.Info("kafka events enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	scheduler := bk.NewScheduler(bk.NewRepository(pool), bk.NewJobStore(pool), credentials, driver, opts...)

	if err := scheduler.Start(ctx); err != nil {
		return err
	}
	defer scheduler.Stop()

	router := newRouter(routes{
		attempts:      scheduler,
		prober:        prober,
		courts:        courts,
		credentials:   credentials,
		mailbox:       mailbox,
		location:      cfg.Location,
		webhookSecret: cfg.WebhookSecret,
		apiKey:        cfg.APIKey,
	})

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", "addr", cfg.ListenAddr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}

	logger.Info("server stopped")

	return nil
}

type routes struct {
	attempts      api.AttemptService
	prober        api.SlotProber
	courts        api.CourtLister
	credentials   api.CredentialStore
	mailbox       api.CodeMailbox
	location      *time.Location
	webhookSecret string
	apiKey        string
}

func newRouter(rt routes) *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	v1 := r.Group("/api/v1")
	apiKey := api.APIKey(rt.apiKey)

	// The SMS webhook carries its own secret, everything else needs the API key.
	api.NewVerificationHandler(rt.mailbox, rt.credentials).
		Register(v1.Group("/verification"), api.WebhookSecret(rt.webhookSecret), apiKey)

	client := v1.Group("")
	client.Use(apiKey)

	attemptHandler := api.NewAttemptHandler(rt.attempts)
	attemptHandler.Register(client.Group("/attempts"))
	attemptHandler.RegisterJobs(client.Group("/jobs"))

	slotHandler := api.NewSlotHandler(rt.prober, rt.courts, rt.location)
	slotHandler.RegisterSlots(client.Group("/slots"))
	slotHandler.RegisterCourts(client.Group("/courts"))

	api.NewCredentialHandler(rt.credentials).Register(client.Group("/credentials"))

	return r
}
