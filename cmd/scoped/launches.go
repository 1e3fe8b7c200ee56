package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/star/scoped/internal/launch"
)

func launchesCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "launches",
		Short: "Summarize launch records",
		Long: `Read a JSON array of launch records (the SpaceX v5 launches format) from a
file or stdin and summarize it.`,
	}

	cmd.PersistentFlags().StringVarP(&file, "file", "f", "-", "launch records JSON file, - for stdin")

	cmd.AddCommand(launchesStatsCmd(a, &file))
	cmd.AddCommand(launchesListCmd(a, &file))

	return cmd
}

func launchesStatsCmd(a *app, file *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count total, successful and failed launches",
		RunE: func(cmd *cobra.Command, args []string) error {
			launches, err := readLaunches(cmd, *file)
			if err != nil {
				return err
			}

			s := launch.Stats(launches)
			a.logger.Info("launch statistics", "total", s.Total, "successful", s.Successful, "failed", s.Failed)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total launches:      %d\n", s.Total)
			fmt.Fprintf(out, "Successful launches: %s\n", good.Sprint(s.Successful))
			fmt.Fprintf(out, "Failed launches:     %s\n", bad.Sprint(s.Failed))
			return nil
		},
	}
}

func launchesListCmd(a *app, file *string) *cobra.Command {
	var (
		search    string
		success   string
		upcoming  bool
		favorites []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List launches newest first",
		Example: `  scoped launches list -f launches.json --search starlink --success true
  curl -s https://api.spacexdata.com/v5/launches | scoped launches list --upcoming`,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := launch.Query{Search: search}
			if success != "" {
				b, err := strconv.ParseBool(success)
				if err != nil {
					return fmt.Errorf("--success must be true or false, got %q", success)
				}
				q.Success = &b
			}

			loc, err := a.cfg.Location()
			if err != nil {
				return err
			}

			// Launch.DaysUntil counts UTC days, so a bare --now is UTC midnight too.
			clock, err := a.clockIn(time.UTC)
			if err != nil {
				return err
			}

			launches, err := readLaunches(cmd, *file)
			if err != nil {
				return err
			}

			launches = launch.Filter(launch.NewestFirst(launches), q)
			if upcoming {
				launches = launch.Upcoming(launches)
			}
			if len(favorites) > 0 {
				launches = onlyFavorites(launches, launch.NewFavorites(favorites...))
			}

			a.logger.Info("listing launches", "count", len(launches), "search", search, "success", success, "upcoming", upcoming)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DATE\tNAME\tOUTCOME\tDAYS")
			for _, l := range launches {
				days := "-"
				if _, ok := l.Date(); ok {
					days = strconv.Itoa(l.DaysUntil(clock))
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", launch.FormatLaunchDate(l.DateUTC, loc), l.Name, outcome(l.Success), days)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "case-insensitive name filter")
	cmd.Flags().StringVar(&success, "success", "", "only launches with this outcome (true or false)")
	cmd.Flags().BoolVar(&upcoming, "upcoming", false, "only upcoming launches")
	cmd.Flags().StringSliceVar(&favorites, "favorite", nil, "only these launch IDs (repeatable)")

	return cmd
}

func onlyFavorites(launches []launch.Launch, favs *launch.Favorites) []launch.Launch {
	var out []launch.Launch
	for _, l := range launches {
		if favs.Contains(l.ID) {
			out = append(out, l)
		}
	}
	return out
}

func readLaunches(cmd *cobra.Command, file string) ([]launch.Launch, error) {
	var r io.Reader = cmd.InOrStdin()
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("open launches: %w", err)
		}
		defer f.Close()
		r = f
	}

	var launches []launch.Launch
	if err := json.NewDecoder(r).Decode(&launches); err != nil {
		return nil, fmt.Errorf("decode launches: %w", err)
	}
	return launches, nil
}
