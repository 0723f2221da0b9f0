package cmd

import (
	"fmt"
	"time"

	"github.com/hanksha/tennis-booking-backend/config"
	"github.com/hanksha/tennis-booking-backend/credential"
	"github.com/hanksha/tennis-booking-backend/database"
	"github.com/hanksha/tennis-booking-backend/reservation"
	"github.com/hanksha/tennis-booking-backend/verification"
	"github.com/spf13/cobra"
)

func newBookCmd() *cobra.Command {
	var (
		courtName  string
		at         string
		email      string
		duration   int
		alternates []string
	)

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Run one reservation right away, outside the scheduler",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if err := cfg.RequireStorage(); err != nil {
				return err
			}

			target, err := time.ParseInLocation("2006-01-02 15:04", at, cfg.Location)
			if err != nil {
				return fmt.Errorf("invalid --time: %w", err)
			}

			ctx := cmd.Context()

			pool, err := database.Open(ctx, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			cipher, err := credential.NewCipher(cfg.CredentialKey)
			if err != nil {
				return err
			}

			cred, err := credential.NewRepository(pool, cipher).GetByIdentity(ctx, email)
			if err != nil {
				return fmt.Errorf("failed to load credential for %v: %w", email, err)
			}

			if cfg.RedisAddr == "" {
				return fmt.Errorf("REDIS_ADDR is required, the SMS code reaches this command through the server's webhook")
			}

			store, closeStore, err := newMailboxStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			profile, err := loadProfile(cfg)
			if err != nil {
				return err
			}

			driver := reservation.NewDriver(newLauncher(cfg), profile, verification.NewMailbox(store),
				reservation.WithCodePolling(cfg.CodePollAttempts, cfg.CodePollInterval),
				reservation.WithLocation(cfg.Location),
			)

			result := driver.Reserve(ctx, reservation.Request{
				Credential:      cred,
				Court:           courtName,
				TargetTime:      target,
				DurationMinutes: duration,
				AlternateTimes:  alternates,
			})

			if !result.Success {
				return fmt.Errorf("reservation failed at %v: %v", result.Reached, result.Reason)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "booked %s at %s\n", courtName, target.Format("Mon Jan 2 15:04"))

			return nil
		},
	}

	cmd.Flags().StringVar(&courtName, "court", "", "court name")
	cmd.Flags().StringVar(&at, "time", "", "start time as \"YYYY-MM-DD HH:MM\" in the configured timezone")
	cmd.Flags().StringVar(&email, "email", "", "account email of a stored credential")
	cmd.Flags().IntVar(&duration, "duration", 0, "60 or 90 minutes, defaults to the credential's playtime")
	cmd.Flags().StringSliceVar(&alternates, "alt", nil, "alternate HH:MM start times, tried in order")
	_ = cmd.MarkFlagRequired("court")
	_ = cmd.MarkFlagRequired("time")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
