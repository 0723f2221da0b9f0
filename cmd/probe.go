package cmd

import (
	"fmt"
	"time"

	"github.com/hanksha/tennis-booking-backend/config"
	"github.com/hanksha/tennis-booking-backend/probe"
	"github.com/spf13/cobra"
)

func newProbeCmd() *cobra.Command {
	var courtName, date string

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "List the open start times of a court on a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			day, err := time.ParseInLocation(time.DateOnly, date, cfg.Location)
			if err != nil {
				return fmt.Errorf("invalid --date: %w", err)
			}

			profile, err := loadProfile(cfg)
			if err != nil {
				return err
			}

			slots, err := probe.NewProber(newLauncher(cfg), profile, cfg.Location).Probe(cmd.Context(), courtName, day)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if len(slots) == 0 {
				fmt.Fprintf(out, "no open slots for %s on %s\n", courtName, date)
				return nil
			}

			for _, slot := range slots {
				fmt.Fprintln(out, slot)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&courtName, "court", "", "court name, e.g. \"Alice Marble\"")
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("court")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}
