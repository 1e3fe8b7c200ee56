package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/star/scoped/internal/launch"
	"github.com/star/scoped/internal/metrics"
)

func countdownCmd(a *app) *cobra.Command {
	var (
		date string
		tz   string
	)

	cmd := &cobra.Command{
		Use:   "countdown",
		Short: "Count calendar days until a launch date",
		Long: `Count the calendar days from now until a launch date. Day boundaries are
taken in the configured timezone (UTC unless set). The count is negative for a
launch in the past and zero on launch day.

Dates are RFC 3339 timestamps or bare YYYY-MM-DD dates.`,
		Example: `  scoped countdown --date 2024-01-11T00:00:00Z --now 2024-01-01
  scoped countdown --date 2031-06-01 --tz America/Chicago`,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := a.cfg.Location()
			if err != nil {
				return err
			}
			if tz != "" {
				if loc, err = time.LoadLocation(tz); err != nil {
					return fmt.Errorf("--tz: %w", err)
				}
			}

			launchDate, err := parseDate(date, loc)
			if err != nil {
				metrics.RecordCountdown(0, err)
				return fmt.Errorf("--date: %w", err)
			}

			clock, err := a.clockIn(loc)
			if err != nil {
				return err
			}

			days, err := launch.DaysUntilLaunchIn(clock, launchDate, loc)
			metrics.RecordCountdown(days, err)
			if err != nil {
				return fmt.Errorf("countdown: %w", err)
			}

			a.logger.Info("countdown calculated",
				"launch_date", launchDate.Format(time.RFC3339),
				"timezone", loc.String(),
				"days", days,
			)

			fmt.Fprintf(cmd.OutOrStdout(), "%d\n%s\n", days, describeDays(days))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "launch date (RFC 3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&tz, "tz", "", "IANA timezone for day boundaries (overrides config)")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}
